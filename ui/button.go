package ui

// ButtonStyle is the palette and typography shared by a group of buttons.
type ButtonStyle struct {
	Background      Color
	BackgroundHover Color
	BackgroundClick Color

	Color      Color
	ColorHover Color
	ColorClick Color

	Font     *Font
	FontSize float64
	Align    Align
}

// DefaultButtonStyle is a grey button with black text that lightens on hover and
// darkens while pressed.
func DefaultButtonStyle(font *Font) ButtonStyle {
	return ButtonStyle{
		Background:      rgb(150, 150, 150),
		BackgroundHover: rgb(180, 180, 180),
		BackgroundClick: rgb(100, 100, 100),
		Color:           Black,
		ColorHover:      Black,
		ColorClick:      White,
		Font:            font,
		FontSize:        24,
		Align:           AlignCenter,
	}
}

func rgb(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// NewButton builds a node that reports id when clicked.
func NewButton(id, label string, origin, size Vec2, style ButtonStyle) *Node {
	return New(Options{
		ID:              id,
		Origin:          &origin,
		Size:            &size,
		Background:      &style.Background,
		BackgroundHover: &style.BackgroundHover,
		BackgroundClick: &style.BackgroundClick,
		Color:           &style.Color,
		ColorHover:      &style.ColorHover,
		ColorClick:      &style.ColorClick,
		Text:            label,
		Font:            style.Font,
		FontSize:        style.FontSize,
		Align:           style.Align,
	})
}

// Column lays out buttons top to bottom inside a container node spanning origin/size.
// Each button takes an equal share of the height, separated by gap (a fraction of the
// container height).
func Column(origin, size Vec2, gap float64, buttons ...*Node) *Node {
	col := New(Options{Origin: &origin, Size: &size})
	if len(buttons) == 0 {
		return col
	}
	h := (1 - gap*float64(len(buttons)-1)) / float64(len(buttons))
	for i, b := range buttons {
		b.Origin = Vec2{0, float64(i) * (h + gap)}
		b.Size = Vec2{1, h}
		col.Push(b)
	}
	return col
}
