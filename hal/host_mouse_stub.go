//go:build !tinygo && !cgo

package hal

func (m *hostMouse) poll() {
	// No pointer support without the window backend.
}
