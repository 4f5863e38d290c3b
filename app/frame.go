package app

import (
	"fbdemo/geom"
	"fbdemo/pixel"
	"fbdemo/render"
	"fbdemo/screen"

	"golang.org/x/image/colornames"
)

const (
	phaseStepMs = 90
	phaseCycle  = 255
)

var (
	backgroundColor = pixel.FromRGBA(colornames.Black)
	optionsColor    = pixel.FromRGBA(colornames.Yellow).WithAlpha(0)
	exitColor       = pixel.FromRGBA(colornames.Red)
	hoverColor      = pixel.FromRGBA(colornames.White).WithAlpha(0x40)
	panicColor      = pixel.FromRGBA(colornames.White)
)

// PhaseAt returns the animation phase for ms milliseconds since start.
func PhaseAt(ms uint64) uint8 {
	return uint8(ms / phaseStepMs % phaseCycle)
}

// ButtonColor returns the fill color of a button for the given phase. The
// phase pulses the exit button's alpha channel.
func ButtonColor(id screen.ButtonID, phase uint8) pixel.Color {
	switch id {
	case screen.ButtonOptions:
		return optionsColor
	case screen.ButtonExit:
		return exitColor.WithAlpha(phase)
	}
	return backgroundColor
}

// RenderFrame draws the background and the buttons visible in st into buf.
// When hover is non-nil, the visible button under it gets a translucent
// highlight.
func RenderFrame(buf []uint32, width, height int, st *State, hover *geom.Point) {
	render.Clear(buf, backgroundColor.Pack())
	for _, b := range st.Screen.Buttons() {
		render.DrawRect(buf, b.Rect, ButtonColor(b.ID, st.Phase).Pack(), width, height)
	}
	if hover == nil {
		return
	}
	if b, ok := st.Screen.Hit(*hover); ok {
		render.BlendRect(buf, b.Rect, hoverColor.Pack(), width, height)
	}
}
