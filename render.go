package replex

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandNone    CommandType = iota // zero value; never executed
	CommandFill                       // fill the whole canvas
	CommandRect                       // filled or stroked rectangle
	CommandCircle                     // filled or stroked circle
	CommandEllipse                    // filled or stroked ellipse inside Rect
	CommandLine                       // single segment Points[0]-Points[1]
	CommandLines                      // polyline through Points
	CommandText                       // text anchored at Points[0]
	CommandImage                      // ebiten image at Points[0]
	CommandCanvas                     // another canvas blitted at Points[0]
	CommandImageRect                  // ebiten image scaled into Rect
)

// DrawCommand is a single draw instruction. It is a plain value: the
// deferred-draw registry stores commands rather than closures.
//
// Thickness 0 means filled for shapes that can be filled.
type DrawCommand struct {
	Type      CommandType
	Rect      Rect
	Points    []Vec2
	Radius    float64
	Thickness float64
	Color     Color
	Closed    bool
	Antialias bool

	Text   string
	Font   *Font
	Anchor Anchor

	Image  *ebiten.Image
	Source Canvas
}

// FillCommand fills the whole canvas.
func FillCommand(c Color) DrawCommand {
	return DrawCommand{Type: CommandFill, Color: c}
}

// RectCommand draws a rectangle.
func RectCommand(r Rect, c Color, thickness float64) DrawCommand {
	return DrawCommand{Type: CommandRect, Rect: r, Color: c, Thickness: thickness}
}

// CircleCommand draws a circle.
func CircleCommand(center Vec2, radius float64, c Color, thickness float64) DrawCommand {
	return DrawCommand{Type: CommandCircle, Points: []Vec2{center}, Radius: radius, Color: c, Thickness: thickness}
}

// EllipseCommand draws the ellipse inscribed in r.
func EllipseCommand(r Rect, c Color, thickness float64) DrawCommand {
	return DrawCommand{Type: CommandEllipse, Rect: r, Color: c, Thickness: thickness}
}

// LineCommand draws a segment. Thickness below 1 draws nothing.
func LineCommand(from, to Vec2, c Color, thickness float64, antialias bool) DrawCommand {
	return DrawCommand{Type: CommandLine, Points: []Vec2{from, to}, Color: c, Thickness: thickness, Antialias: antialias}
}

// LinesCommand draws a polyline, closing it back to the first point when
// closed is true.
func LinesCommand(points []Vec2, closed bool, c Color, thickness float64, antialias bool) DrawCommand {
	return DrawCommand{Type: CommandLines, Points: points, Closed: closed, Color: c, Thickness: thickness, Antialias: antialias}
}

// TextCommand draws text. A nil font draws nothing.
func TextCommand(pos Vec2, s string, f *Font, c Color, anchor Anchor) DrawCommand {
	return DrawCommand{Type: CommandText, Points: []Vec2{pos}, Text: s, Font: f, Color: c, Anchor: anchor}
}

// ImageCommand draws an ebiten image.
func ImageCommand(img *ebiten.Image, pos Vec2) DrawCommand {
	return DrawCommand{Type: CommandImage, Points: []Vec2{pos}, Image: img}
}

// ImageRectCommand draws an ebiten image scaled to fill dst.
func ImageRectCommand(img *ebiten.Image, dst Rect) DrawCommand {
	return DrawCommand{Type: CommandImageRect, Rect: dst, Image: img}
}

// CanvasCommand blits another canvas.
func CanvasCommand(src Canvas, pos Vec2) DrawCommand {
	return DrawCommand{Type: CommandCanvas, Points: []Vec2{pos}, Source: src}
}

// valid reports whether the command carries everything its type needs.
func (cmd *DrawCommand) valid() bool {
	switch cmd.Type {
	case CommandFill, CommandRect, CommandEllipse:
		return true
	case CommandCircle, CommandText:
		return len(cmd.Points) >= 1
	case CommandLine:
		return len(cmd.Points) >= 2
	case CommandLines:
		return len(cmd.Points) >= 2
	case CommandImage:
		return cmd.Image != nil && len(cmd.Points) >= 1
	case CommandCanvas:
		return cmd.Source != nil && len(cmd.Points) >= 1
	case CommandImageRect:
		return cmd.Image != nil && cmd.Rect.Width > 0 && cmd.Rect.Height > 0
	}
	return false
}

// execute runs the command against a canvas.
func (cmd *DrawCommand) execute(c Canvas) {
	switch cmd.Type {
	case CommandFill:
		c.Fill(cmd.Color)
	case CommandRect:
		if cmd.Thickness <= 0 {
			c.FillRect(cmd.Rect, cmd.Color)
		} else {
			c.StrokeRect(cmd.Rect, cmd.Thickness, cmd.Color)
		}
	case CommandCircle:
		if cmd.Radius < 1 {
			return
		}
		if cmd.Thickness <= 0 {
			c.FillCircle(cmd.Points[0], cmd.Radius, cmd.Color)
		} else {
			c.StrokeCircle(cmd.Points[0], cmd.Radius, cmd.Thickness, cmd.Color)
		}
	case CommandEllipse:
		if cmd.Thickness <= 0 {
			c.FillEllipse(cmd.Rect, cmd.Color)
			return
		}
		pts := ellipsePoints(cmd.Rect, ellipseSegments)
		strokePolyline(c, pts, true, cmd.Thickness, cmd.Color, true)
	case CommandLine:
		if cmd.Thickness < 1 {
			return
		}
		c.StrokeLine(cmd.Points[0], cmd.Points[1], cmd.Thickness, cmd.Color, cmd.Antialias)
	case CommandLines:
		if cmd.Thickness < 1 {
			return
		}
		strokePolyline(c, cmd.Points, cmd.Closed, cmd.Thickness, cmd.Color, cmd.Antialias)
	case CommandText:
		if cmd.Font == nil {
			return
		}
		c.DrawText(cmd.Text, cmd.Font, cmd.Points[0], cmd.Anchor, cmd.Color)
	case CommandImage:
		c.DrawImage(cmd.Image, cmd.Points[0])
	case CommandCanvas:
		c.DrawCanvas(cmd.Source, cmd.Points[0])
	case CommandImageRect:
		c.DrawImageRect(cmd.Image, cmd.Rect)
	}
}

const ellipseSegments = 48

// ellipsePoints approximates the ellipse inscribed in r with n vertices.
func ellipsePoints(r Rect, n int) []Vec2 {
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	rx, ry := r.Width/2, r.Height/2
	pts := make([]Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec2{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

func strokePolyline(c Canvas, pts []Vec2, closed bool, width float64, col Color, aa bool) {
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1], pts[i], width, col, aa)
	}
	if closed && len(pts) > 2 {
		c.StrokeLine(pts[len(pts)-1], pts[0], width, col, aa)
	}
}

// --- Deferred draw registry ---

// drawRegistry buckets draw commands by z-index. Slots grow monotonically to
// the highest registered z-index; executed slots are truncated, not freed.
type drawRegistry struct {
	slots  [][]DrawCommand
	locked bool
}

// register appends cmd to slot z. While locked (during flush) the command is
// executed immediately on c instead of being deferred.
func (r *drawRegistry) register(z int, cmd DrawCommand, c Canvas) error {
	if z < 0 {
		return ErrNegativeZIndex
	}
	if !cmd.valid() {
		return ErrInvalidCommand
	}
	if r.locked {
		cmd.execute(c)
		return nil
	}
	for len(r.slots) <= z {
		r.slots = append(r.slots, []DrawCommand{})
	}
	r.slots[z] = append(r.slots[z], cmd)
	return nil
}

// flush executes every slot in ascending z-index order, insertion order
// within a slot, then clears the registry. Returns the number of commands
// executed.
func (r *drawRegistry) flush(c Canvas) int {
	r.locked = true
	n := 0
	for z := range r.slots {
		for i := range r.slots[z] {
			r.slots[z][i].execute(c)
			n++
		}
	}
	for z := range r.slots {
		clear(r.slots[z])
		r.slots[z] = r.slots[z][:0]
	}
	r.locked = false
	return n
}

// pending returns the number of deferred commands.
func (r *drawRegistry) pending() int {
	n := 0
	for _, slot := range r.slots {
		n += len(slot)
	}
	return n
}
