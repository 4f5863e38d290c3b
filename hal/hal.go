package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to stop the runner without error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatARGB8888 is one uint32 per pixel: aaaaaaaarrrrrrrrggggggggbbbbbbbb.
	PixelFormatARGB8888 PixelFormat = iota + 1
)

// Framebuffer is a row-major packed pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Pixels() []uint32
	Clear(pixel uint32)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// MouseMode selects how Position treats a pointer outside the window.
type MouseMode uint8

const (
	// MouseDiscard reports ok=false when the pointer is outside the client area.
	MouseDiscard MouseMode = iota
	// MouseClamp clamps the position to the client area.
	MouseClamp
	// MousePass reports the raw position.
	MousePass
)

// Mouse provides the sampled pointer state for the current frame.
type Mouse interface {
	ButtonDown(b MouseButton) bool
	Position(mode MouseMode) (x, y float64, ok bool)
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Mouse() Mouse
}

// Time provides a monotonic millisecond clock.
type Time interface {
	Millis() uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
