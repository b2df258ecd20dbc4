package replex

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName is always registered in a new FontRegistry and is used when
// a style names no font.
const DefaultFontName = "default"

// Font wraps a text/v2 face with cached line metrics.
type Font struct {
	face text.Face
	lh   float64
}

// NewFont wraps an existing text/v2 face.
func NewFont(face text.Face) *Font {
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// LoadFont parses TrueType/OpenType data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("replex: failed to parse font data: %w", err)
	}
	return NewFont(&text.GoTextFace{Source: source, Size: size}), nil
}

// GoRegular returns the Go Regular typeface at the given size.
func GoRegular(size float64) (*Font, error) {
	return LoadFont(goregular.TTF, size)
}

// BasicFont returns the 7x13 fixed bitmap face. It needs no font data.
func BasicFont() *Font {
	return NewFont(text.NewGoXFace(basicfont.Face7x13))
}

// Face returns the underlying text/v2 face.
func (f *Font) Face() text.Face { return f.face }

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// Measure returns the width and height of the rendered text.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// anchored converts an anchored position into the top-left corner of the
// rendered text.
func (f *Font) anchored(s string, pos Vec2, anchor Anchor) Vec2 {
	w, h := f.Measure(s)
	switch anchor {
	case AnchorCenter:
		return Vec2{pos.X - w/2, pos.Y - h/2}
	case AnchorTopRight:
		return Vec2{pos.X - w, pos.Y}
	case AnchorBottomLeft:
		return Vec2{pos.X, pos.Y - h}
	case AnchorBottomRight:
		return Vec2{pos.X - w, pos.Y - h}
	case AnchorMidLeft:
		return Vec2{pos.X, pos.Y - h/2}
	default:
		return pos
	}
}

// FontRegistry maps names to loaded fonts.
type FontRegistry struct {
	fonts map[string]*Font
}

// NewFontRegistry creates a registry holding only DefaultFontName.
func NewFontRegistry() *FontRegistry {
	r := &FontRegistry{fonts: make(map[string]*Font)}
	r.fonts[DefaultFontName] = BasicFont()
	return r
}

// Register stores f under name, replacing any previous font.
func (r *FontRegistry) Register(name string, f *Font) {
	r.fonts[name] = f
}

// Load parses font data and registers it under name.
func (r *FontRegistry) Load(name string, ttfData []byte, size float64) (*Font, error) {
	f, err := LoadFont(ttfData, size)
	if err != nil {
		return nil, err
	}
	r.fonts[name] = f
	return f, nil
}

// Get returns the font registered under name, or nil when none is.
// Drawing with a nil font is a no-op.
func (r *FontRegistry) Get(name string) *Font {
	return r.fonts[name]
}

// Fonts is the registry styles resolve font names against.
var Fonts = NewFontRegistry()

// resolveFont picks f when set, otherwise looks name up in Fonts. An empty
// name means DefaultFontName.
func resolveFont(f *Font, name string) *Font {
	if f != nil {
		return f
	}
	if name == "" {
		name = DefaultFontName
	}
	return Fonts.Get(name)
}
