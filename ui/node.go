package ui

// Default values applied by New when the matching Options field is unset.
var (
	DefaultOrigin   = Vec2{0, 0}
	DefaultSize     = Vec2{1, 1}
	DefaultFontSize = 12.0
)

// Node is one rectangular region of the UI tree. Its layout is expressed as fractions of
// the parent's rectangle and resolved every time the tree is drawn or hit-tested.
type Node struct {
	// ID is reported by Controller.Update when the node is activated. Nodes without an ID
	// still highlight but never activate.
	ID string

	Origin Vec2
	Size   Vec2

	Background      Color
	BackgroundHover Color
	BackgroundClick Color

	Color      Color
	ColorHover Color
	ColorClick Color

	Text     string
	Font     *Font
	FontSize float64
	Align    Align

	children []*Node
}

// Options configures New. Nil fields take their default; unset hover and click colors
// are copied from the resolved idle color.
type Options struct {
	ID string

	Origin *Vec2
	Size   *Vec2

	Background      *Color
	BackgroundHover *Color
	BackgroundClick *Color

	Color      *Color
	ColorHover *Color
	ColorClick *Color

	Text     string
	Font     *Font
	FontSize float64
	Align    Align

	Children []*Node
}

// New builds a node from opts. Defaults are resolved once, here; changing Background on
// the returned node later does not affect BackgroundHover or BackgroundClick.
func New(opts Options) *Node {
	n := &Node{
		ID:         opts.ID,
		Origin:     or(opts.Origin, DefaultOrigin),
		Size:       or(opts.Size, DefaultSize),
		Background: or(opts.Background, Transparent),
		Color:      or(opts.Color, Black),
		Text:       opts.Text,
		Font:       opts.Font,
		FontSize:   opts.FontSize,
		Align:      opts.Align,
	}
	n.BackgroundHover = or(opts.BackgroundHover, n.Background)
	n.BackgroundClick = or(opts.BackgroundClick, n.Background)
	n.ColorHover = or(opts.ColorHover, n.Color)
	n.ColorClick = or(opts.ColorClick, n.Color)
	if n.FontSize <= 0 {
		n.FontSize = DefaultFontSize
	}
	n.Push(opts.Children...)
	return n
}

func or[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// Ptr returns a pointer to v. It is a convenience for filling Options.
func Ptr[T any](v T) *T {
	return &v
}

// Push appends children in draw order and returns n for chaining.
func (n *Node) Push(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Children returns the node's children in draw order.
func (n *Node) Children() []*Node {
	return n.children
}

// Rect resolves the node's absolute rectangle inside parent.
func (n *Node) Rect(parent Rect) Rect {
	return parent.Child(n.Origin, n.Size)
}

// HitTest reports whether p lies inside the node's rectangle. Ancestor bounds do not
// clip the test.
func (n *Node) HitTest(p Point, parent Rect) bool {
	return n.Rect(parent).Contains(p)
}

// State is the visual state a node renders in for one frame.
type State int

const (
	StateIdle State = iota
	StateHover
	StatePressed
)

func (s State) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	}
	return "idle"
}

func stateAt(r Rect, p Pointer) State {
	if !r.Contains(p.Pos) {
		return StateIdle
	}
	if p.Primary {
		return StatePressed
	}
	return StateHover
}

// State returns the node's visual state for pointer p.
func (n *Node) State(p Pointer, parent Rect) State {
	return stateAt(n.Rect(parent), p)
}

// Colors returns the background and text color used in state s.
func (n *Node) Colors(s State) (background, text Color) {
	switch s {
	case StatePressed:
		return n.BackgroundClick, n.ColorClick
	case StateHover:
		return n.BackgroundHover, n.ColorHover
	}
	return n.Background, n.Color
}

// Walk visits n and its descendants in draw order together with their absolute rectangles.
// Returning false from fn skips the node's children.
func Walk(n *Node, parent Rect, fn func(n *Node, r Rect) bool) {
	r := n.Rect(parent)
	if !fn(n, r) {
		return
	}
	for _, c := range n.children {
		Walk(c, r, fn)
	}
}
