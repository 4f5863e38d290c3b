// Package render stamps solid rectangles into a row-major packed ARGB buffer.
package render

import (
	"fbdemo/geom"
	"fbdemo/pixel"
)

// Clear overwrites every pixel of buf with c.
func Clear(buf []uint32, c uint32) {
	for i := range buf {
		buf[i] = c
	}
}

// DrawRect writes c into every pixel of r. Coordinates at or past the
// buffer edge are skipped. A malformed r is a programming error and panics.
func DrawRect(buf []uint32, r geom.Rect, c uint32, width, height int) {
	eachPixel(buf, r, width, height, func(i int) { buf[i] = c })
}

// BlendRect composites c over every pixel of r with pixel.Blend.
func BlendRect(buf []uint32, r geom.Rect, c uint32, width, height int) {
	eachPixel(buf, r, width, height, func(i int) { buf[i] = pixel.Blend(buf[i], c) })
}

func eachPixel(buf []uint32, r geom.Rect, width, height int, fn func(i int)) {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	for y := r.Top; y <= r.Bottom; y++ {
		if y >= height {
			break
		}
		for x := r.Left; x <= r.Right; x++ {
			if x >= width {
				break
			}
			i := y*width + x
			if i >= len(buf) {
				return
			}
			fn(i)
		}
	}
}
