package replex

import "github.com/hajimehoshi/ebiten/v2"

// Surface is a drawable canvas that also dispatches events to the
// interactive children drawn onto it this frame.
//
// A Surface does not keep a persistent child list. During the draw phase
// every Draw* call for an interactive child registers that child as this
// frame's event target (and tick target for containers); Tick consumes and
// clears both lists. A child that is not drawn stops receiving events.
type Surface struct {
	InteractiveComponent

	canvas Canvas

	tickObjects  []Ticker
	eventObjects []Target
	hover        Target

	registry drawRegistry
	store    EntityStore
	root     *Surface
}

// NewSurface creates a surface backed by an offscreen ebiten image.
func NewSurface(pos Vec2, size Size) *Surface {
	return NewSurfaceWithCanvas(pos, newCanvas(size))
}

// NewSurfaceWithCanvas creates a surface drawing onto c. The surface takes
// its size from the canvas.
func NewSurfaceWithCanvas(pos Vec2, c Canvas) *Surface {
	s := &Surface{}
	s.init(pos, c)
	return s
}

func (s *Surface) init(pos Vec2, c Canvas) {
	s.InteractiveComponent = NewInteractiveComponent(pos, c.Size())
	s.canvas = c
}

// Resize replaces the backing canvas with a new one of the given size.
// Previous contents are lost.
func (s *Surface) Resize(size Size) {
	if size == s.Size() {
		return
	}
	s.SetSize(size)
	s.canvas = newCanvas(s.Size())
}

// Canvas returns the canvas the surface draws onto.
func (s *Surface) Canvas() Canvas { return s.canvas }

// Image returns the backing ebiten image, or nil when the surface is not
// backed by an ImageCanvas.
func (s *Surface) Image() *ebiten.Image {
	if ic, ok := s.canvas.(*ImageCanvas); ok {
		return ic.Image()
	}
	return nil
}

// SetEntityStore sets the ECS bridge for events this surface forwards.
// Child surfaces inherit it when drawn.
func (s *Surface) SetEntityStore(store EntityStore) { s.store = store }

// Root returns the outermost surface s was last drawn into, or s itself
// when it has not been drawn onto another surface.
func (s *Surface) Root() *Surface {
	if s.root != nil {
		return s.root
	}
	return s
}

// --- Per-frame bookkeeping ---

// AddEventTarget registers t for hit-testing until the next Tick.
func (s *Surface) AddEventTarget(t Target) {
	s.eventObjects = append(s.eventObjects, t)
}

// AddTickTarget registers t to be ticked on the next Tick.
func (s *Surface) AddTickTarget(t Ticker) {
	s.tickObjects = append(s.tickObjects, t)
}

// EventTargets returns this frame's event targets in registration order.
// The returned slice MUST NOT be mutated.
func (s *Surface) EventTargets() []Target { return s.eventObjects }

// Tick advances every tick target, then clears this frame's tick and event
// targets.
func (s *Surface) Tick() {
	for _, obj := range s.tickObjects {
		obj.Tick()
	}
	clear(s.tickObjects)
	s.tickObjects = s.tickObjects[:0]
	clear(s.eventObjects)
	s.eventObjects = s.eventObjects[:0]
}

// --- Deferred drawing ---

// RegisterDrawing defers cmd to the z-index slot z. Lower slots draw first.
// While Render is executing, the command runs immediately instead.
func (s *Surface) RegisterDrawing(z int, cmd DrawCommand) error {
	return s.registry.register(z, cmd, s.canvas)
}

// PendingDrawings returns the number of deferred commands not yet rendered.
func (s *Surface) PendingDrawings() int { return s.registry.pending() }

// Render executes every deferred command in ascending z-index order, then
// clears the registry. It returns the number of commands executed.
func (s *Surface) Render() int {
	return s.registry.flush(s.canvas)
}

// submit draws cmds immediately unless an explicit z-index defers them.
func (s *Surface) submit(z int, hasZ bool, cmds ...DrawCommand) {
	for i := range cmds {
		if hasZ {
			_ = s.RegisterDrawing(z, cmds[i])
			continue
		}
		if cmds[i].valid() {
			cmds[i].execute(s.canvas)
		}
	}
}

// --- Primitive drawing (immediate, local coordinates) ---

// Clear clears the canvas.
func (s *Surface) Clear() { s.canvas.Clear() }

// Fill fills the canvas with c.
func (s *Surface) Fill(c Color) { s.submit(0, false, FillCommand(c)) }

// DrawRect draws a rectangle. Thickness 0 draws it filled.
func (s *Surface) DrawRect(r Rect, c Color, thickness float64) {
	s.submit(0, false, RectCommand(r, c, thickness))
}

// DrawCircle draws a circle. Thickness 0 draws it filled; a radius below 1
// draws nothing.
func (s *Surface) DrawCircle(center Vec2, radius float64, c Color, thickness float64) {
	s.submit(0, false, CircleCommand(center, radius, c, thickness))
}

// DrawEllipse draws the ellipse inscribed in r. Thickness 0 draws it filled.
func (s *Surface) DrawEllipse(r Rect, c Color, thickness float64) {
	s.submit(0, false, EllipseCommand(r, c, thickness))
}

// DrawLine draws a segment. Thickness below 1 draws nothing.
func (s *Surface) DrawLine(from, to Vec2, c Color, thickness float64) {
	s.submit(0, false, LineCommand(from, to, c, thickness, false))
}

// DrawAntialiasedLine draws an antialiased segment one pixel wide.
func (s *Surface) DrawAntialiasedLine(from, to Vec2, c Color) {
	s.submit(0, false, LineCommand(from, to, c, 1, true))
}

// DrawLines draws a polyline. If closed, the last point connects back to
// the first. Thickness below 1 draws nothing.
func (s *Surface) DrawLines(points []Vec2, closed bool, c Color, thickness float64) {
	s.submit(0, false, LinesCommand(points, closed, c, thickness, false))
}

// DrawText draws s with f anchored at pos. A nil font draws nothing.
func (s *Surface) DrawText(pos Vec2, str string, f *Font, c Color, anchor Anchor) {
	s.submit(0, false, TextCommand(pos, str, f, c, anchor))
}

// DrawTextByFontName looks the font up in Fonts and draws nothing when it
// is not registered.
func (s *Surface) DrawTextByFontName(pos Vec2, str, fontName string, c Color, anchor Anchor) {
	if f := Fonts.Get(fontName); f != nil {
		s.DrawText(pos, str, f, c, anchor)
	}
}

// DrawImage draws img with its top-left corner at pos.
func (s *Surface) DrawImage(img *ebiten.Image, pos Vec2) {
	s.submit(0, false, ImageCommand(img, pos))
}

// DrawSurface renders child's deferred drawings, blits it at its position,
// and registers it as this frame's tick and event target.
func (s *Surface) DrawSurface(child *Surface) {
	s.drawChild(child, child, child)
}

// drawChild composites a child surface and registers target/ticker for it.
// Widgets that embed Surface pass themselves so overridden handlers run.
func (s *Surface) drawChild(child *Surface, target Target, ticker Ticker) {
	child.store = s.store
	child.root = s.Root()
	child.Render()
	z, hasZ := child.ZIndex()
	s.submit(z, hasZ, CanvasCommand(child.canvas, child.Pos()))
	s.tickObjects = append(s.tickObjects, ticker)
	s.eventObjects = append(s.eventObjects, target)
}

// --- Dispatch ---

// pick returns the single target under p. Later hits replace the candidate
// when the candidate has no z-index, or when both have one and the new
// z-index is greater or equal.
func (s *Surface) pick(p Vec2) Target {
	var (
		winner Target
		wz     int
		wHasZ  bool
	)
	for _, obj := range s.eventObjects {
		if !obj.HitTest(p) {
			continue
		}
		z, hasZ := obj.ZIndex()
		if winner == nil || !wHasZ || (hasZ && z >= wz) {
			winner, wz, wHasZ = obj, z, hasZ
		}
	}
	return winner
}

// Pick returns the target that would receive a pointer event at p, given in
// this surface's local coordinates.
func (s *Surface) Pick(p Vec2) Target { return s.pick(p) }

// toLocal converts an event from the parent's coordinate space.
func (s *Surface) isTarget(t Target) bool {
	for _, obj := range s.eventObjects {
		if obj == t {
			return true
		}
	}
	return false
}

func (s *Surface) toLocal(e Event) Event {
	return e.translated(-s.pos.X, -s.pos.Y)
}

func (s *Surface) forward(t Target, e Event) {
	emitTo(s.store, t, e)
}

// OnMouseDown fires this surface's listeners, then forwards the event to the
// single target under the pointer.
func (s *Surface) OnMouseDown(e Event) {
	e = s.toLocal(e).as(EventMouseDown)
	s.InteractiveComponent.OnMouseDown(e)
	if t := s.pick(e.Pos()); t != nil {
		t.OnMouseDown(e)
		s.forward(t, e)
	}
}

// OnMouseUp fires this surface's listeners, then forwards the event to the
// single target under the pointer.
func (s *Surface) OnMouseUp(e Event) {
	e = s.toLocal(e).as(EventMouseUp)
	s.InteractiveComponent.OnMouseUp(e)
	if t := s.pick(e.Pos()); t != nil {
		t.OnMouseUp(e)
		s.forward(t, e)
	}
}

// OnMouseWheel fires this surface's listeners, then forwards the event to the
// single target under the pointer.
func (s *Surface) OnMouseWheel(e Event) {
	e = s.toLocal(e).as(EventMouseWheel)
	s.InteractiveComponent.OnMouseWheel(e)
	if t := s.pick(e.Pos()); t != nil {
		t.OnMouseWheel(e)
		s.forward(t, e)
	}
}

// OnMouseMove fires this surface's listeners, sends leave to every entered
// target no longer under the pointer, then enter (if needed) and move to the
// winner. An entered target covered by a higher winner stays entered.
func (s *Surface) OnMouseMove(e Event) {
	e = s.toLocal(e).as(EventMouseMove)
	s.InteractiveComponent.OnMouseMove(e)

	p := e.Pos()
	winner := s.pick(p)
	for _, obj := range s.eventObjects {
		if obj != winner && obj.MouseEntered() && !obj.HitTest(p) {
			obj.OnMouseLeave(e.as(EventMouseLeave))
			s.forward(obj, e.as(EventMouseLeave))
		}
	}
	// A previous hover target that was not drawn this frame can no longer
	// be under the pointer.
	if h := s.hover; h != nil && h != winner && h.MouseEntered() && (!h.HitTest(p) || !s.isTarget(h)) {
		h.OnMouseLeave(e.as(EventMouseLeave))
		s.forward(h, e.as(EventMouseLeave))
	}
	s.hover = winner

	if winner == nil {
		return
	}
	if !winner.MouseEntered() {
		winner.OnMouseEnter(e.as(EventMouseEnter))
		s.forward(winner, e.as(EventMouseEnter))
	}
	winner.OnMouseMove(e)
	s.forward(winner, e)
}

// OnMouseLeave clears this surface's hover state and that of every entered
// child.
func (s *Surface) OnMouseLeave(e Event) {
	e = s.toLocal(e).as(EventMouseLeave)
	s.InteractiveComponent.OnMouseLeave(e)
	for _, obj := range s.eventObjects {
		if obj.MouseEntered() {
			obj.OnMouseLeave(e)
			s.forward(obj, e)
		}
	}
	if s.hover != nil && s.hover.MouseEntered() {
		s.hover.OnMouseLeave(e)
		s.forward(s.hover, e)
	}
	s.hover = nil
}

// OnMouseEnter latches this surface's hover state.
func (s *Surface) OnMouseEnter(e Event) {
	s.InteractiveComponent.OnMouseEnter(s.toLocal(e).as(EventMouseEnter))
}

// OnKeyDown fires this surface's listeners and broadcasts the event to every
// event target.
func (s *Surface) OnKeyDown(e Event) {
	e = e.as(EventKeyDown)
	s.InteractiveComponent.OnKeyDown(e)
	for _, obj := range s.eventObjects {
		obj.OnKeyDown(e)
		s.forward(obj, e)
	}
}

// OnKeyUp fires this surface's listeners and broadcasts the event to every
// event target.
func (s *Surface) OnKeyUp(e Event) {
	e = e.as(EventKeyUp)
	s.InteractiveComponent.OnKeyUp(e)
	for _, obj := range s.eventObjects {
		obj.OnKeyUp(e)
		s.forward(obj, e)
	}
}

// Dispatch routes e to the handler matching its kind. Pointer coordinates
// are in this surface's parent space (screen space for a scene root).
func (s *Surface) Dispatch(e Event) {
	switch e.Kind {
	case EventMouseDown:
		s.OnMouseDown(e)
	case EventMouseUp:
		s.OnMouseUp(e)
	case EventMouseWheel:
		s.OnMouseWheel(e)
	case EventMouseMove:
		s.OnMouseMove(e)
	case EventMouseEnter:
		s.OnMouseEnter(e)
	case EventMouseLeave:
		s.OnMouseLeave(e)
	case EventKeyDown:
		s.OnKeyDown(e)
	case EventKeyUp:
		s.OnKeyUp(e)
	}
}

// parentBinding tracks listeners a widget attaches to the surface it is
// drawn on, so they follow the widget when it moves to another parent.
type parentBinding struct {
	parent  *Surface
	handles []CallbackHandle
}

func (b *parentBinding) bound(p *Surface) bool { return b.parent == p }

// reset removes every listener and rebinds to p.
func (b *parentBinding) reset(p *Surface) {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = b.handles[:0]
	b.parent = p
}

func (b *parentBinding) add(kind EventKind, fn func(Event)) {
	if b.parent != nil {
		b.handles = append(b.handles, b.parent.AddEventListener(kind, fn))
	}
}
