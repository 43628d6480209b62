package ui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a typeface a node can render its text with. Scalable fonts honor the node's
// font size; fixed fonts always render at their native size.
type Font struct {
	name   string
	source *text.GoTextFaceSource
	fixed  text.Face
}

// Name returns the font's name, for logging.
func (f *Font) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Face returns a text face for size, or nil when f is nil or empty.
func (f *Font) Face(size float64) text.Face {
	switch {
	case f == nil:
		return nil
	case f.source != nil:
		return &text.GoTextFace{Source: f.source, Size: size}
	case f.fixed != nil:
		return f.fixed
	}
	return nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
	defaultFontErr  error
)

// DefaultFont returns the Go Regular typeface. It is parsed once.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = ParseFont("goregular", goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// BitmapFont returns the fixed size bitmap typeface.
func BitmapFont() *Font {
	return &Font{name: "bitmap", fixed: text.NewGoXFace(bitmapfont.Face)}
}

// ParseFont parses TrueType or OpenType data.
func ParseFont(name string, data []byte) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	return &Font{name: name, source: src}, nil
}

// LoadFont reads and parses the font file at path.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	return ParseFont(filepath.Base(path), data)
}
