package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/rcade/config"
)

// window applies settings to the OS window.
type window interface {
	SetFullscreen(on bool)
	Apply(s config.WindowSettings)
}

type ebitenWindow struct{}

func (ebitenWindow) SetFullscreen(on bool) {
	ebiten.SetFullscreen(on)
}

func (ebitenWindow) Apply(s config.WindowSettings) {
	ebiten.SetWindowSize(s.Size())
	ebiten.SetFullscreen(s.IsFullscreen())
	ebiten.SetWindowDecorated(!s.IsBorderless())
	if s.IsResizable() {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}
