//go:build !tinygo

package hal

// hostMouse holds the pointer state sampled at the start of a frame.
type hostMouse struct {
	width  int
	height int

	down [3]bool
	x, y float64
}

func newHostMouse(width, height int) *hostMouse {
	return &hostMouse{width: width, height: height, x: -1, y: -1}
}

func (m *hostMouse) ButtonDown(b MouseButton) bool {
	if int(b) >= len(m.down) {
		return false
	}
	return m.down[b]
}

func (m *hostMouse) Position(mode MouseMode) (x, y float64, ok bool) {
	w, h := float64(m.width), float64(m.height)
	switch mode {
	case MouseDiscard:
		if m.x < 0 || m.y < 0 || m.x >= w || m.y >= h {
			return 0, 0, false
		}
	case MouseClamp:
		return clamp(m.x, 0, w-1), clamp(m.y, 0, h-1), true
	}
	return m.x, m.y, true
}

func (m *hostMouse) set(x, y float64, left, middle, right bool) {
	m.x, m.y = x, y
	m.down = [3]bool{left, middle, right}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
