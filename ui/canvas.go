package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface the UI tree renders onto.
type Canvas interface {
	FillRect(r Rect, c Color)
	DrawText(s string, font *Font, size float64, r Rect, align Align, c Color)
}

var _ Canvas = Screen{}

// Screen draws onto an ebiten image.
type Screen struct {
	Image *ebiten.Image
}

func (s Screen) FillRect(r Rect, c Color) {
	if c[3] <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(s.Image, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

// DrawText draws s inside r, aligned horizontally by align and centered vertically.
func (s Screen) DrawText(str string, font *Font, size float64, r Rect, align Align, c Color) {
	face := font.Face(size)
	if face == nil {
		return
	}

	x := r.X
	switch align {
	case AlignCenter:
		x += r.W / 2
	case AlignRight:
		x += r.W
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, r.Y+r.H/2)
	op.PrimaryAlign = align.textAlign()
	op.SecondaryAlign = text.AlignCenter
	m := face.Metrics()
	op.LineSpacing = m.HLineGap + m.HAscent + m.HDescent
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.Image, str, face, op)
}

// Draw renders n and its descendants inside parent. The state of every node is derived
// from p alone; children are drawn after, and therefore on top of, their parent.
func (n *Node) Draw(c Canvas, parent Rect, p Pointer) {
	Walk(n, parent, func(n *Node, r Rect) bool {
		bg, fg := n.Colors(stateAt(r, p))
		c.FillRect(r, bg)
		if n.Text != "" && n.Font != nil {
			c.DrawText(n.Text, n.Font, n.FontSize, r, n.Align, fg)
		}
		return true
	})
}
