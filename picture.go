package replex

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Picture is a positioned image. It draws at its component size and scales
// the source when that differs from the source's natural size.
type Picture struct {
	InteractiveComponent

	src     *ebiten.Image
	natural Size
}

// NewPicture creates a picture of src at its natural size. A nil src draws
// nothing.
func NewPicture(pos Vec2, src *ebiten.Image) *Picture {
	var natural Size
	if src != nil {
		b := src.Bounds()
		natural = Size{W: b.Dx(), H: b.Dy()}
	}
	return newPicture(pos, src, natural)
}

func newPicture(pos Vec2, src *ebiten.Image, natural Size) *Picture {
	return &Picture{
		InteractiveComponent: NewInteractiveComponent(pos, natural),
		src:                  src,
		natural:              natural,
	}
}

// LoadPicture reads an image file and creates a picture of it.
func LoadPicture(pos Vec2, path string) (*Picture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("replex: load picture %q: %w", path, err)
	}
	return NewPicture(pos, img), nil
}

// Source returns the source image.
func (p *Picture) Source() *ebiten.Image { return p.src }

// NaturalSize returns the source image size.
func (p *Picture) NaturalSize() Size { return p.natural }

// Rescale sets the drawn size.
func (p *Picture) Rescale(size Size) { p.SetSize(size) }

// ResetScale restores the natural size.
func (p *Picture) ResetScale() { p.SetSize(p.natural) }

// Scaled reports whether the picture draws at other than its natural size.
func (p *Picture) Scaled() bool { return p.Size() != p.natural }

func (p *Picture) command() DrawCommand {
	if !p.Scaled() {
		return ImageCommand(p.src, p.pos)
	}
	sz := p.Size()
	return ImageRectCommand(p.src, Rect{X: p.pos.X, Y: p.pos.Y, Width: float64(sz.W), Height: float64(sz.H)})
}

// DrawPicture draws p and registers it as an event target.
func (s *Surface) DrawPicture(p *Picture) {
	z, hasZ := p.ZIndex()
	s.submit(z, hasZ, p.command())
	s.eventObjects = append(s.eventObjects, p)
}
