//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

func (m *hostMouse) poll() {
	x, y := ebiten.CursorPosition()
	m.set(float64(x), float64(y),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	)
}
