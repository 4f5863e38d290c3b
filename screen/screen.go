// Package screen tracks which virtual screen is active and what a click on
// it does.
package screen

import "fbdemo/geom"

// Screen identifies a virtual screen.
type Screen uint8

const (
	Main Screen = iota
	Options
)

func (s Screen) String() string {
	switch s {
	case Main:
		return "main"
	case Options:
		return "options"
	default:
		return "unknown"
	}
}

// ButtonID names a clickable area.
type ButtonID uint8

const (
	ButtonOptions ButtonID = iota + 1
	// ButtonExit exits from Main and goes back from Options.
	ButtonExit
)

type Button struct {
	ID   ButtonID
	Rect geom.Rect
}

// Action is the effect of a click.
type Action uint8

const (
	ActionNone Action = iota
	ActionOpenOptions
	ActionBack
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionOpenOptions:
		return "open-options"
	case ActionBack:
		return "back"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Layout places the two buttons.
type Layout struct {
	Options geom.Rect
	Exit    geom.Rect
}

// DefaultLayout puts the options button in the top-left corner and the exit
// button in the top-right corner, each a tenth of the buffer on a side.
func DefaultLayout(width, height int) Layout {
	return Layout{
		Options: geom.MustRect(0, 0, width/10, height/10),
		Exit:    geom.MustRect(width-width/10, 0, width, height/10),
	}
}

// Machine is the screen state machine.
type Machine struct {
	Current Screen
	Layout  Layout
}

func NewMachine(l Layout) *Machine {
	return &Machine{Current: Main, Layout: l}
}

// Buttons returns the buttons drawn on the current screen, in draw order.
func (m *Machine) Buttons() []Button {
	exit := Button{ID: ButtonExit, Rect: m.Layout.Exit}
	if m.Current == Main {
		return []Button{{ID: ButtonOptions, Rect: m.Layout.Options}, exit}
	}
	return []Button{exit}
}

// Hit returns the visible button under p. Exit wins where buttons overlap.
func (m *Machine) Hit(p geom.Point) (Button, bool) {
	bs := m.Buttons()
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i].Rect.Contains(p) {
			return bs[i], true
		}
	}
	return Button{}, false
}

// Click applies a click at p and returns what it did.
func (m *Machine) Click(p geom.Point) Action {
	switch m.Current {
	case Main:
		if m.Layout.Exit.Contains(p) {
			return ActionExit
		}
		if m.Layout.Options.Contains(p) {
			m.Current = Options
			return ActionOpenOptions
		}
	case Options:
		if m.Layout.Exit.Contains(p) {
			m.Current = Main
			return ActionBack
		}
	}
	return ActionNone
}
