package render

import (
	"errors"
	"testing"

	"fbdemo/geom"
	"fbdemo/pixel"
)

const (
	testW = 8
	testH = 6
)

func TestClear(t *testing.T) {
	buf := make([]uint32, testW*testH)
	Clear(buf, 0xFF000000)
	for i, p := range buf {
		if p != 0xFF000000 {
			t.Fatalf("buf[%d] = %#08x", i, p)
		}
	}
}

func TestDrawRectFillsWholeBuffer(t *testing.T) {
	buf := make([]uint32, testW*testH)
	DrawRect(buf, geom.MustRect(0, 0, testW-1, testH-1), 0xFFFF0000, testW, testH)
	for i, p := range buf {
		if p != 0xFFFF0000 {
			t.Fatalf("buf[%d] = %#08x, want filled", i, p)
		}
	}
}

func TestDrawRectClipsAtBufferEdge(t *testing.T) {
	buf := make([]uint32, testW*testH)
	// Right and bottom sit one past the last valid column and row.
	DrawRect(buf, geom.MustRect(testW-2, 0, testW, 2), 1, testW, testH)

	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			want := uint32(0)
			if x >= testW-2 && y <= 2 {
				want = 1
			}
			if got := buf[y*testW+x]; got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDrawRectClipsFullyOutside(t *testing.T) {
	buf := make([]uint32, testW*testH)
	DrawRect(buf, geom.MustRect(testW+1, testH+1, testW+5, testH+5), 1, testW, testH)
	for i, p := range buf {
		if p != 0 {
			t.Fatalf("buf[%d] = %d, want untouched", i, p)
		}
	}
}

func TestDrawRectMalformedPanics(t *testing.T) {
	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok || !errors.Is(err, geom.ErrMalformedRect) {
			t.Fatalf("recover() = %v, want ErrMalformedRect", v)
		}
	}()
	buf := make([]uint32, testW*testH)
	DrawRect(buf, geom.Rect{Left: 3, Top: 0, Right: 3, Bottom: 2}, 1, testW, testH)
}

func TestBlendRect(t *testing.T) {
	buf := make([]uint32, testW*testH)
	Clear(buf, pixel.New(0xFF, 0, 100, 0).Pack())
	BlendRect(buf, geom.MustRect(0, 0, 1, 1), pixel.New(0, 0xFF, 0xFF, 0xFF).Pack(), testW, testH)

	want := pixel.New(0xFF, 0, 100, 0).Pack()
	for i, p := range buf {
		if p != want {
			t.Fatalf("buf[%d] = %#08x, want %#08x", i, p, want)
		}
	}

	BlendRect(buf, geom.MustRect(0, 0, 1, 1), pixel.New(0xFF, 1, 2, 3).Pack(), testW, testH)
	if buf[0] != 0xFF010203 || buf[testW+1] != 0xFF010203 {
		t.Fatalf("opaque blend not applied: %#08x %#08x", buf[0], buf[testW+1])
	}
	if buf[2] != want {
		t.Fatalf("buf[2] = %#08x, want untouched", buf[2])
	}
}
