package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Controller drives one UI tree: it owns the viewport, samples the pointer once per tick
// and turns press/release pairs into activations.
type Controller struct {
	root     *Node
	viewport Rect
	source   PointerSource

	pointer Pointer
	armed   *Node
}

// NewController creates a controller reading from source. A nil source reads the
// mouse and touch screen through ebiten.
func NewController(source PointerSource) *Controller {
	if source == nil {
		source = &EbitenPointer{}
	}
	return &Controller{source: source}
}

// SetRoot replaces the tree. Presses in progress on the old tree are forgotten.
func (c *Controller) SetRoot(root *Node) {
	c.root = root
	c.armed = nil
}

// Root returns the current tree.
func (c *Controller) Root() *Node {
	return c.root
}

// UpdateWindowSize sets the viewport the root node is laid out in.
func (c *Controller) UpdateWindowSize(width, height int) {
	c.viewport = Rect{W: float64(width), H: float64(height)}
}

// Viewport returns the rectangle the root node is laid out in.
func (c *Controller) Viewport() Rect {
	return c.viewport
}

// Pointer returns the pointer state sampled by the last Update.
func (c *Controller) Pointer() Pointer {
	return c.pointer
}

// Update samples the pointer and reports the ID of the node activated this tick, if any.
// Only the topmost node under the pointer (the last one in draw order) takes presses,
// whether or not it has an ID; an ID-less node drawn on top shields the nodes beneath it.
// That node is armed when the primary button goes down over it and activated when the
// button comes up while it is still the topmost node under the pointer. Moving off it
// disarms it.
func (c *Controller) Update() (id string, ok bool) {
	p := c.source.Pointer()
	pressed := p.Primary && !c.pointer.Primary
	released := !p.Primary && c.pointer.Primary
	c.pointer = p

	if c.root == nil {
		return "", false
	}

	top := c.topmost(p.Pos)
	if c.armed != top {
		c.armed = nil
	}
	switch {
	case pressed && top != nil && top.ID != "":
		c.armed = top
	case released && c.armed != nil:
		id, ok = c.armed.ID, true
	}
	if !p.Primary {
		c.armed = nil
	}
	return id, ok
}

// topmost returns the last node in draw order containing pos, or nil.
func (c *Controller) topmost(pos Point) *Node {
	var top *Node
	Walk(c.root, c.viewport, func(n *Node, r Rect) bool {
		if r.Contains(pos) {
			top = n
		}
		return true
	})
	return top
}

// DrawTo renders the tree onto canvas using the pointer sampled by the last Update.
func (c *Controller) DrawTo(canvas Canvas) {
	if c.root == nil {
		return
	}
	c.root.Draw(canvas, c.viewport, c.pointer)
}

// Draw renders the tree onto screen.
func (c *Controller) Draw(screen *ebiten.Image) {
	c.DrawTo(Screen{Image: screen})
}

// ShowDebugInfo prints the measured FPS and TPS and the pointer sampled by the last
// Update (position and primary button) in the top-left corner.
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, c.debugInfo(ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (c *Controller) debugInfo(fps, tps float64) string {
	state := "up"
	if c.pointer.Primary {
		state = "down"
	}
	return fmt.Sprintf("FPS: %.2f TPS: %.2f\nPointer: %.0f,%.0f %s",
		fps, tps, c.pointer.Pos.X, c.pointer.Pos.Y, state)
}
