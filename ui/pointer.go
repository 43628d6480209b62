package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer is the pointer state sampled for one tick.
type Pointer struct {
	Pos     Point
	Primary bool
}

// PointerSource samples the current pointer state.
type PointerSource interface {
	Pointer() Pointer
}

// EbitenPointer reads the mouse and touch screen. While a finger is down the first
// touch acts as the pointer with the primary button held; on lift its last position is
// reported once more with the button up so a tap can release over the node it pressed.
type EbitenPointer struct {
	touches   []ebiten.TouchID
	touching  bool
	lastTouch Point
}

func (e *EbitenPointer) Pointer() Pointer {
	e.touches = ebiten.AppendTouchIDs(e.touches[:0])
	if len(e.touches) > 0 {
		x, y := ebiten.TouchPosition(e.touches[0])
		e.touching = true
		e.lastTouch = Point{X: float64(x), Y: float64(y)}
		return Pointer{Pos: e.lastTouch, Primary: true}
	}
	if e.touching {
		e.touching = false
		return Pointer{Pos: e.lastTouch}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		Pos:     Point{X: float64(x), Y: float64(y)},
		Primary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
