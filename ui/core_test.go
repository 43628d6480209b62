package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectChild(t *testing.T) {
	tests := []struct {
		name         string
		parent       Rect
		origin, size Vec2
		want         Rect
	}{
		{
			name:   "Full viewport",
			parent: Rect{0, 0, 800, 600},
			origin: Vec2{0, 0},
			size:   Vec2{1, 1},
			want:   Rect{0, 0, 800, 600},
		},
		{
			name:   "Nested quarter",
			parent: Rect{0, 0, 100, 100},
			origin: Vec2{0.5, 0.5},
			size:   Vec2{0.5, 0.5},
			want:   Rect{50, 50, 50, 50},
		},
		{
			name:   "Offset parent",
			parent: Rect{10, 20, 200, 100},
			origin: Vec2{0.1, 0.05},
			size:   Vec2{0.8, 0.1},
			want:   Rect{0.1*200 + 10, 0.05*100 + 20, 0.8 * 200, 0.1 * 100},
		},
		{
			name:   "Zero size",
			parent: Rect{5, 5, 50, 50},
			origin: Vec2{1, 1},
			size:   Vec2{0, 0},
			want:   Rect{55, 55, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.parent.Child(tt.origin, tt.size)
			if got != tt.want {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestRectChildMatchesFormula(t *testing.T) {
	parents := []Rect{{0, 0, 500, 500}, {13.5, 7.25, 320, 240}, {-40, 12, 1920, 1080}}
	steps := []float64{0, 0.1, 0.25, 1.0 / 3, 0.5, 0.9, 1}

	for _, p := range parents {
		for _, ox := range steps {
			for _, sy := range steps {
				o, s := Vec2{ox, 1 - ox}, Vec2{1 - sy, sy}
				want := Rect{o[0]*p.W + p.X, o[1]*p.H + p.Y, s[0] * p.W, s[1] * p.H}
				assert.Equal(t, want, p.Child(o, s))
			}
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{15, 15}, true},
		{Point{10, 10}, true},
		{Point{30, 30}, true},
		{Point{9.9, 15}, false},
		{Point{15, 30.1}, false},
		{Point{-1, -1}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.p), "point %+v", tt.p)
	}
}

func TestColorRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{0, 0, 0, 0}, Transparent.NRGBA())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, Black.NRGBA())
	assert.Equal(t, color.NRGBA{255, 0, 128, 255}, Color{1.5, -1, 0.5, 1}.NRGBA())

	r, g, b, a := Color{1, 0, 0, 0.5}.RGBA()
	wr, wg, wb, wa := color.NRGBA{255, 0, 0, 128}.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})
}

func TestAlignString(t *testing.T) {
	assert.Equal(t, "left", AlignLeft.String())
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "right", AlignRight.String())
}
