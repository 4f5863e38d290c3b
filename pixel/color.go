// Package pixel implements the ARGB color model used by the framebuffer:
// 8-bit channels, packed 32-bit pixels and source-over compositing.
package pixel

import "image/color"

// Color is a pixel as four 8-bit channels.
type Color struct {
	A, R, G, B uint8
}

func New(a, r, g, b uint8) Color { return Color{A: a, R: r, G: g, B: b} }

// FromBytes builds a Color from an (a, r, g, b) byte array.
func FromBytes(b [4]byte) Color { return Color{A: b[0], R: b[1], G: b[2], B: b[3]} }

// Bytes returns the channels in (a, r, g, b) order.
func (c Color) Bytes() [4]byte { return [4]byte{c.A, c.R, c.G, c.B} }

// Pack encodes c as a big-endian 32-bit pixel: alpha in the most
// significant byte, blue in the least.
func (c Color) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack is the inverse of Pack. It is total over all uint32 values.
func Unpack(p uint32) Color {
	return Color{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// FromRGBA converts an image/color value. Channels are taken as-is; palette
// entries such as golang.org/x/image/colornames are opaque, so premultiplication
// does not matter for them.
func FromRGBA(c color.RGBA) Color { return Color{A: c.A, R: c.R, G: c.G, B: c.B} }

func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }
