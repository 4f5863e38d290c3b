//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []uint32

	presented uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		buf:    make([]uint32, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatARGB8888 }
func (f *hostFramebuffer) Pixels() []uint32    { return f.buf }

// Present marks the current contents as a finished frame. The window
// backend picks them up on its next draw.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presented++
	return nil
}

func (f *hostFramebuffer) Clear(pixel uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.buf {
		f.buf[i] = pixel
	}
}

func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	argbToRGBA(dst, f.buf)
}

// Snapshot copies fb into an opaque RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if hf, ok := fb.(*hostFramebuffer); ok {
		hf.snapshotRGBA(img.Pix)
		return img
	}
	argbToRGBA(img.Pix, fb.Pixels())
	return img
}

// NewFramebuffer returns an in-memory framebuffer with no window attached.
func NewFramebuffer(width, height int) Framebuffer {
	return newHostFramebuffer(width, height)
}
