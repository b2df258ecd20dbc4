package replex

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the rendering collaborator a Surface composites onto. All
// coordinates are in the canvas' local space.
type Canvas interface {
	Size() Size
	Clear()
	Fill(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	FillEllipse(r Rect, c Color)
	StrokeLine(from, to Vec2, width float64, c Color, antialias bool)
	DrawText(s string, f *Font, pos Vec2, anchor Anchor, c Color)
	DrawImage(img *ebiten.Image, pos Vec2)
	DrawImageRect(img *ebiten.Image, dst Rect)
	DrawCanvas(src Canvas, pos Vec2)
}

// newCanvas creates the backing canvas for new surfaces.
var newCanvas = func(size Size) Canvas { return NewImageCanvas(size) }

// --- ImageCanvas ---

// ImageCanvas draws onto an offscreen ebiten image.
type ImageCanvas struct {
	img  *ebiten.Image
	size Size
}

// NewImageCanvas allocates an offscreen image. Zero dimensions are backed by
// a 1x1 image since ebiten cannot allocate empty images.
func NewImageCanvas(size Size) *ImageCanvas {
	return &ImageCanvas{
		img:  ebiten.NewImage(max(size.W, 1), max(size.H, 1)),
		size: size,
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *ebiten.Image { return c.img }

func (c *ImageCanvas) Size() Size     { return c.size }
func (c *ImageCanvas) Clear()         { c.img.Clear() }
func (c *ImageCanvas) Fill(col Color) { c.img.Fill(col) }

func (c *ImageCanvas) FillRect(r Rect, col Color) {
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col, true)
}

func (c *ImageCanvas) StrokeRect(r Rect, width float64, col Color) {
	vector.StrokeRect(c.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), col, true)
}

func (c *ImageCanvas) FillCircle(center Vec2, radius float64, col Color) {
	vector.DrawFilledCircle(c.img, float32(center.X), float32(center.Y), float32(radius), col, true)
}

func (c *ImageCanvas) StrokeCircle(center Vec2, radius, width float64, col Color) {
	vector.StrokeCircle(c.img, float32(center.X), float32(center.Y), float32(radius), float32(width), col, true)
}

func (c *ImageCanvas) FillEllipse(r Rect, col Color) {
	pts := ellipsePoints(r, ellipseSegments)
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := col.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	c.img.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *ImageCanvas) StrokeLine(from, to Vec2, width float64, col Color, antialias bool) {
	vector.StrokeLine(c.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), col, antialias)
}

func (c *ImageCanvas) DrawText(s string, f *Font, pos Vec2, anchor Anchor, col Color) {
	if f == nil || s == "" {
		return
	}
	tl := f.anchored(s, pos, anchor)
	op := &text.DrawOptions{}
	op.GeoM.Translate(tl.X, tl.Y)
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = f.LineHeight()
	text.Draw(c.img, s, f.face, op)
}

func (c *ImageCanvas) DrawImage(img *ebiten.Image, pos Vec2) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	c.img.DrawImage(img, op)
}

// DrawImageRect scales img to fill dst with linear filtering.
func (c *ImageCanvas) DrawImageRect(img *ebiten.Image, dst Rect) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	c.img.DrawImage(img, op)
}

// DrawCanvas blits src when it is backed by an ebiten image.
func (c *ImageCanvas) DrawCanvas(src Canvas, pos Vec2) {
	if ic, ok := src.(*ImageCanvas); ok {
		c.DrawImage(ic.img, pos)
	}
}

// whiteImage backs solid-color triangle fills. Created on first use so that
// importing the package does not allocate GPU resources.
var whiteImage *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(ColorWhite)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// --- RecordingCanvas ---

// RecordingCanvas records every draw as a DrawCommand instead of producing
// pixels. It is useful for tests and for replaying a frame elsewhere.
type RecordingCanvas struct {
	size Size
	Ops  []DrawCommand
}

// NewRecordingCanvas creates an empty recording canvas.
func NewRecordingCanvas(size Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Types returns the command types recorded so far, in order.
func (c *RecordingCanvas) Types() []CommandType {
	out := make([]CommandType, len(c.Ops))
	for i := range c.Ops {
		out[i] = c.Ops[i].Type
	}
	return out
}

// Replay executes every recorded command on dst.
func (c *RecordingCanvas) Replay(dst Canvas) {
	for i := range c.Ops {
		c.Ops[i].execute(dst)
	}
}

func (c *RecordingCanvas) Size() Size { return c.size }

// Clear discards recorded operations, mirroring cleared pixels.
func (c *RecordingCanvas) Clear() { c.Ops = c.Ops[:0] }

func (c *RecordingCanvas) Fill(col Color) { c.Ops = append(c.Ops, FillCommand(col)) }

func (c *RecordingCanvas) FillRect(r Rect, col Color) {
	c.Ops = append(c.Ops, RectCommand(r, col, 0))
}

func (c *RecordingCanvas) StrokeRect(r Rect, width float64, col Color) {
	c.Ops = append(c.Ops, RectCommand(r, col, width))
}

func (c *RecordingCanvas) FillCircle(center Vec2, radius float64, col Color) {
	c.Ops = append(c.Ops, CircleCommand(center, radius, col, 0))
}

func (c *RecordingCanvas) StrokeCircle(center Vec2, radius, width float64, col Color) {
	c.Ops = append(c.Ops, CircleCommand(center, radius, col, width))
}

func (c *RecordingCanvas) FillEllipse(r Rect, col Color) {
	c.Ops = append(c.Ops, EllipseCommand(r, col, 0))
}

func (c *RecordingCanvas) StrokeLine(from, to Vec2, width float64, col Color, antialias bool) {
	c.Ops = append(c.Ops, LineCommand(from, to, col, width, antialias))
}

func (c *RecordingCanvas) DrawText(s string, f *Font, pos Vec2, anchor Anchor, col Color) {
	c.Ops = append(c.Ops, TextCommand(pos, s, f, col, anchor))
}

func (c *RecordingCanvas) DrawImage(img *ebiten.Image, pos Vec2) {
	c.Ops = append(c.Ops, ImageCommand(img, pos))
}

func (c *RecordingCanvas) DrawImageRect(img *ebiten.Image, dst Rect) {
	c.Ops = append(c.Ops, ImageRectCommand(img, dst))
}

func (c *RecordingCanvas) DrawCanvas(src Canvas, pos Vec2) {
	c.Ops = append(c.Ops, CanvasCommand(src, pos))
}
