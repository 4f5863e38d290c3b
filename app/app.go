package app

import (
	"errors"
	"fmt"
	"math"

	"fbdemo/geom"
	"fbdemo/hal"
	"fbdemo/internal/buildinfo"
	"fbdemo/input"
	"fbdemo/screen"
)

var ErrNoFramebuffer = errors.New("app: no framebuffer")

type Config struct {
	// Verbose logs every change of the animation phase.
	Verbose bool
	// Hover highlights the button under the pointer.
	Hover bool
}

func DefaultConfig() Config {
	return Config{}
}

// State is everything that survives from one frame to the next.
type State struct {
	Screen *screen.Machine
	Left   input.Edge
	Phase  uint8
}

func NewState(width, height int) *State {
	return &State{Screen: screen.NewMachine(screen.DefaultLayout(width, height))}
}

type App struct {
	cfg Config

	log   hal.Logger
	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	mouse hal.Mouse
	clock hal.Time

	st *State
}

// New initializes the app with default config and returns its frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig initializes the app and returns its frame step. The step
// returns hal.ErrQuit when the app wants to exit.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := newApp(h, cfg)
	return a.Step
}

func newApp(h hal.HAL, cfg Config) *App {
	a := &App{cfg: cfg, log: h.Logger(), clock: h.Time()}
	if a.log == nil {
		a.log = discardLogger{}
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
		a.mouse = in.Mouse()
	}
	if a.fb != nil {
		a.st = NewState(a.fb.Width(), a.fb.Height())
		a.log.WriteLineString(fmt.Sprintf("fbdemo %s: %dx%d screen=%s",
			buildinfo.Long(), a.fb.Width(), a.fb.Height(), a.st.Screen.Current))
	}
	return a
}

// Step runs one frame.
func (a *App) Step() (err error) {
	if a.fb == nil {
		return ErrNoFramebuffer
	}
	defer a.recoverPanic(&err)

	if a.escapePressed() {
		return hal.ErrQuit
	}

	a.advancePhase()

	var hover *geom.Point
	if a.cfg.Hover {
		if p, ok := a.pointer(); ok {
			hover = &p
		}
	}
	RenderFrame(a.fb.Pixels(), a.fb.Width(), a.fb.Height(), a.st, hover)

	if a.pollClick() == screen.ActionExit {
		a.log.WriteLineString("app: exit")
		return hal.ErrQuit
	}

	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (a *App) escapePressed() bool {
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return false
			}
			if ev.Code == hal.KeyEscape && ev.Press {
				return true
			}
		default:
			return false
		}
	}
}

func (a *App) advancePhase() {
	var ms uint64
	if a.clock != nil {
		ms = a.clock.Millis()
	}
	prev := a.st.Phase
	a.st.Phase = PhaseAt(ms)
	if a.cfg.Verbose && a.st.Phase != prev {
		a.log.WriteLineString(fmt.Sprintf("phase: %d", a.st.Phase))
	}
}

// pollClick samples the left button and dispatches a release to the
// screen machine. Releases outside the window are dropped.
func (a *App) pollClick() screen.Action {
	if a.mouse == nil {
		return screen.ActionNone
	}
	if !a.st.Left.Update(a.mouse.ButtonDown(hal.MouseLeft)) {
		return screen.ActionNone
	}
	p, ok := a.pointer()
	if !ok {
		return screen.ActionNone
	}

	act := a.st.Screen.Click(p)
	switch act {
	case screen.ActionOpenOptions:
		a.log.WriteLineString("options: enter")
	case screen.ActionBack:
		a.log.WriteLineString("options: exit")
	}
	return act
}

func (a *App) pointer() (geom.Point, bool) {
	if a.mouse == nil {
		return geom.Point{}, false
	}
	x, y, ok := a.mouse.Position(hal.MouseDiscard)
	if !ok {
		return geom.Point{}, false
	}
	return roundPoint(x, y), true
}

// roundPoint rounds half away from zero for the non-negative positions the
// discard mode yields.
func roundPoint(x, y float64) geom.Point {
	return geom.Point{X: int(math.Floor(x + 0.5)), Y: int(math.Floor(y + 0.5))}
}

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}
