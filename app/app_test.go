package app

import (
	"errors"
	"strings"
	"testing"

	"fbdemo/geom"
	"fbdemo/hal"
	"fbdemo/pixel"
	"fbdemo/screen"
)

const (
	testW = 500
	testH = 500
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) has(s string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

type fakeMouse struct {
	down   bool
	x, y   float64
	inside bool
}

func (m *fakeMouse) ButtonDown(b hal.MouseButton) bool { return b == hal.MouseLeft && m.down }

func (m *fakeMouse) Position(mode hal.MouseMode) (float64, float64, bool) {
	if mode == hal.MouseDiscard && !m.inside {
		return 0, 0, false
	}
	return m.x, m.y, true
}

type fakeKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeClock struct {
	ms uint64
}

func (c *fakeClock) Millis() uint64 { return c.ms }

type failingFB struct {
	hal.Framebuffer
	err error
}

func (f failingFB) Present() error { return f.err }

type fakeHAL struct {
	log   *fakeLogger
	fb    hal.Framebuffer
	kbd   *fakeKeyboard
	mouse *fakeMouse
	clock *fakeClock
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:   &fakeLogger{},
		fb:    hal.NewFramebuffer(testW, testH),
		kbd:   &fakeKeyboard{ch: make(chan hal.KeyEvent, 8)},
		mouse: &fakeMouse{inside: true},
		clock: &fakeClock{},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Time() hal.Time       { return h.clock }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }
func (h *fakeHAL) Mouse() hal.Mouse             { return h.mouse }

func (h *fakeHAL) pixelAt(x, y int) uint32 { return h.fb.Pixels()[y*testW+x] }

// click presses and releases the left button at (x, y) over two frames and
// returns the error of the release frame.
func click(t *testing.T, h *fakeHAL, step func() error, x, y float64) error {
	t.Helper()
	h.mouse.x, h.mouse.y = x, y
	h.mouse.down = true
	if err := step(); err != nil {
		t.Fatalf("press frame: %v", err)
	}
	h.mouse.down = false
	return step()
}

func TestClickScenario(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, DefaultConfig())

	if a.st.Screen.Current != screen.Main {
		t.Fatalf("initial screen = %v", a.st.Screen.Current)
	}

	if err := click(t, h, a.Step, 25, 25); err != nil {
		t.Fatalf("click options: %v", err)
	}
	if a.st.Screen.Current != screen.Options {
		t.Fatalf("screen = %v, want options", a.st.Screen.Current)
	}
	if !h.log.has("options: enter") {
		t.Fatalf("log = %q", h.log.lines)
	}

	if err := click(t, h, a.Step, 475.2, 10.7); err != nil {
		t.Fatalf("click back: %v", err)
	}
	if a.st.Screen.Current != screen.Main {
		t.Fatalf("screen = %v, want main", a.st.Screen.Current)
	}
	if !h.log.has("options: exit") {
		t.Fatalf("log = %q", h.log.lines)
	}

	// 499.6 rounds to 500, the inclusive right edge of the exit button.
	if err := click(t, h, a.Step, 499.6, 50.2); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("click exit: err = %v, want ErrQuit", err)
	}
}

func TestClickOutsideWindowIgnored(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, DefaultConfig())

	h.mouse.inside = false
	if err := click(t, h, a.Step, 25, 25); err != nil {
		t.Fatalf("click: %v", err)
	}
	if a.st.Screen.Current != screen.Main {
		t.Fatalf("screen = %v, want main", a.st.Screen.Current)
	}
	if a.st.Left.Pending {
		t.Fatal("release edge not consumed")
	}
}

func TestHeldButtonDoesNotClick(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, DefaultConfig())

	h.mouse.x, h.mouse.y = 25, 25
	h.mouse.down = true
	for i := 0; i < 5; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if a.st.Screen.Current != screen.Main {
		t.Fatalf("screen = %v while button held", a.st.Screen.Current)
	}
}

func TestEscapeQuits(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, DefaultConfig())

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: false}
	if err := step(); err != nil {
		t.Fatalf("escape release: %v", err)
	}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("escape press: err = %v, want ErrQuit", err)
	}
}

func TestFrameContents(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, DefaultConfig())

	h.clock.ms = 900
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.st.Phase != 10 {
		t.Fatalf("phase = %d, want 10", a.st.Phase)
	}

	if got := h.pixelAt(250, 250); got != 0xFF000000 {
		t.Fatalf("background = %#08x", got)
	}
	if got := h.pixelAt(10, 10); got != 0x00FFFF00 {
		t.Fatalf("options button = %#08x", got)
	}
	if got := h.pixelAt(475, 25); got != 0x0AFF0000 {
		t.Fatalf("exit button = %#08x", got)
	}
	if got := h.pixelAt(499, 50); got != 0x0AFF0000 {
		t.Fatalf("exit button corner = %#08x", got)
	}
	if got := h.pixelAt(499, 51); got != 0xFF000000 {
		t.Fatalf("below exit button = %#08x", got)
	}

	a.st.Screen.Current = screen.Options
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := h.pixelAt(10, 10); got != 0xFF000000 {
		t.Fatalf("options button drawn on options screen: %#08x", got)
	}
}

func TestHoverHighlight(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{Hover: true})

	h.mouse.x, h.mouse.y = 10, 10
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := pixel.Blend(optionsColor.Pack(), hoverColor.Pack())
	if got := h.pixelAt(20, 20); got != want {
		t.Fatalf("hovered options = %#08x, want %#08x", got, want)
	}
	if got := h.pixelAt(475, 25); got != exitColor.WithAlpha(0).Pack() {
		t.Fatalf("exit button = %#08x, want unhighlighted", got)
	}
}

func TestVerbosePhaseLog(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{Verbose: true})

	h.clock.ms = 180
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !h.log.has("phase: 2") {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestPresentErrorIsFatal(t *testing.T) {
	h := newFakeHAL()
	boom := errors.New("window destroyed")
	h.fb = failingFB{Framebuffer: h.fb, err: boom}
	step := NewWithConfig(h, DefaultConfig())

	if err := step(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestPanicBecomesError(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, DefaultConfig())
	a.st.Screen.Layout.Exit = geom.Rect{Left: 10, Top: 0, Right: 5, Bottom: 5}

	err := a.Step()
	if !errors.Is(err, geom.ErrMalformedRect) {
		t.Fatalf("err = %v, want ErrMalformedRect", err)
	}
	if !h.log.has("fbdemo panic") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if got := h.pixelAt(0, 0); got != panicColor.Pack() {
		t.Fatalf("pixel = %#08x, want panic fill", got)
	}
}

func TestNoFramebuffer(t *testing.T) {
	h := newFakeHAL()
	h.fb = nil
	step := New(h)
	if err := step(); !errors.Is(err, ErrNoFramebuffer) {
		t.Fatalf("err = %v, want ErrNoFramebuffer", err)
	}
}

func TestPhaseAt(t *testing.T) {
	cases := []struct {
		ms   uint64
		want uint8
	}{
		{0, 0},
		{89, 0},
		{90, 1},
		{90 * 254, 254},
		{90 * 255, 0},
		{90 * 256, 1},
	}
	for _, tc := range cases {
		if got := PhaseAt(tc.ms); got != tc.want {
			t.Fatalf("PhaseAt(%d) = %d, want %d", tc.ms, got, tc.want)
		}
	}
}

func TestRoundPoint(t *testing.T) {
	if p := roundPoint(10.5, 10.49); p != (geom.Point{X: 11, Y: 10}) {
		t.Fatalf("roundPoint = %v", p)
	}
	if p := roundPoint(0, 0.2); p != (geom.Point{}) {
		t.Fatalf("roundPoint = %v", p)
	}
}
