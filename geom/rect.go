// Package geom holds the buffer-space geometry used for buttons.
package geom

import (
	"errors"
	"fmt"
)

var ErrMalformedRect = errors.New("malformed rectangle")

// Point is a pixel coordinate in buffer space.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. All four edges are inclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectError describes why a Rect was rejected.
type RectError struct {
	Rect   Rect
	Reason string
}

func (e *RectError) Error() string {
	return fmt.Sprintf("geom: rect (%d,%d)-(%d,%d): %s", e.Rect.Left, e.Rect.Top, e.Rect.Right, e.Rect.Bottom, e.Reason)
}

func (e *RectError) Unwrap() error { return ErrMalformedRect }

// NewRect returns a validated rectangle.
func NewRect(left, top, right, bottom int) (Rect, error) {
	r := Rect{Left: left, Top: top, Right: right, Bottom: bottom}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// MustRect is like NewRect but panics on a malformed rectangle.
func MustRect(left, top, right, bottom int) Rect {
	r, err := NewRect(left, top, right, bottom)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate reports whether r has positive extent on both axes and
// non-negative coordinates.
func (r Rect) Validate() error {
	switch {
	case r.Left < 0 || r.Top < 0 || r.Right < 0 || r.Bottom < 0:
		return &RectError{Rect: r, Reason: "negative coordinate"}
	case r.Left >= r.Right:
		return &RectError{Rect: r, Reason: "left coordinate must be less than right coordinate"}
	case r.Top >= r.Bottom:
		return &RectError{Rect: r, Reason: "top coordinate must be less than bottom coordinate"}
	}
	return nil
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}
