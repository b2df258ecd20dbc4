package replex

// Component is a positioned, sized rectangle with an optional z-index. It is
// the base addressable unit of the toolkit.
type Component struct {
	pos  Vec2
	size Size
	z    int
	hasZ bool
}

// NewComponent creates a component without a z-index. Negative size
// dimensions are clamped to zero.
func NewComponent(pos Vec2, size Size) Component {
	c := Component{pos: pos}
	c.SetSize(size)
	return c
}

// Pos returns the component's position in its parent's coordinate space.
func (c *Component) Pos() Vec2 { return c.pos }

// SetPos moves the component.
func (c *Component) SetPos(pos Vec2) { c.pos = pos }

// Size returns the component's size.
func (c *Component) Size() Size { return c.size }

// SetSize resizes the component. Negative dimensions are clamped to zero.
func (c *Component) SetSize(size Size) {
	c.size = Size{W: max(size.W, 0), H: max(size.H, 0)}
}

// ZIndex returns the explicit stacking order and whether one is set.
func (c *Component) ZIndex() (int, bool) { return c.z, c.hasZ }

// SetZIndex gives the component an explicit stacking order.
func (c *Component) SetZIndex(z int) error {
	if z < 0 {
		return ErrNegativeZIndex
	}
	c.z, c.hasZ = z, true
	return nil
}

// ClearZIndex removes the explicit stacking order.
func (c *Component) ClearZIndex() { c.z, c.hasZ = 0, false }

// Bounds returns the component rectangle in its parent's coordinate space.
func (c *Component) Bounds() Rect {
	return Rect{X: c.pos.X, Y: c.pos.Y, Width: float64(c.size.W), Height: float64(c.size.H)}
}

// HitTest reports whether p lies strictly inside the component.
func (c *Component) HitTest(p Vec2) bool {
	return c.Bounds().Contains(p.X, p.Y)
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn func(Event)
}

// listenerRegistry keeps one ordered list per event kind. Every kind always
// has a list, even if empty.
type listenerRegistry struct {
	lists  [eventKindCount][]listener
	nextID uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id   uint32
	reg  *listenerRegistry
	kind EventKind
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.kind >= eventKindCount {
		return
	}
	s := h.reg.lists[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.reg.lists[h.kind] = s[:len(s)-1]
			return
		}
	}
}

func (r *listenerRegistry) add(kind EventKind, fn func(Event)) CallbackHandle {
	if kind >= eventKindCount || fn == nil {
		return CallbackHandle{}
	}
	r.nextID++
	r.lists[kind] = append(r.lists[kind], listener{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: kind}
}

func (r *listenerRegistry) fire(e Event) {
	if e.Kind >= eventKindCount {
		return
	}
	for _, l := range r.lists[e.Kind] {
		l.fn(e)
	}
}

// --- Target ---

// Target is anything a Surface can hit-test and forward events to.
type Target interface {
	HitTest(p Vec2) bool
	ZIndex() (int, bool)
	MouseEntered() bool
	OnMouseDown(e Event)
	OnMouseUp(e Event)
	OnMouseWheel(e Event)
	OnMouseMove(e Event)
	OnMouseEnter(e Event)
	OnMouseLeave(e Event)
	OnKeyDown(e Event)
	OnKeyUp(e Event)
}

// Ticker advances per-frame state.
type Ticker interface {
	Tick()
}

// InteractiveComponent adds per-event-kind listener lists and a latched
// hover state to Component. Its On* methods fire the matching listeners;
// widgets embedding it override them and call through.
type InteractiveComponent struct {
	Component

	// EntityID links the component to an ECS entity. Zero means unlinked.
	EntityID uint32

	entered   bool
	listeners listenerRegistry
}

// NewInteractiveComponent creates an interactive component without a z-index.
func NewInteractiveComponent(pos Vec2, size Size) InteractiveComponent {
	return InteractiveComponent{Component: NewComponent(pos, size)}
}

// AddEventListener appends fn to the listener list for kind.
func (c *InteractiveComponent) AddEventListener(kind EventKind, fn func(Event)) CallbackHandle {
	return c.listeners.add(kind, fn)
}

// ClearEventListeners empties the listener list for kind.
func (c *InteractiveComponent) ClearEventListeners(kind EventKind) {
	if kind < eventKindCount {
		clear(c.listeners.lists[kind])
		c.listeners.lists[kind] = c.listeners.lists[kind][:0]
	}
}

// ListenerCount returns how many listeners are registered for kind.
func (c *InteractiveComponent) ListenerCount(kind EventKind) int {
	if kind >= eventKindCount {
		return 0
	}
	return len(c.listeners.lists[kind])
}

// MouseEntered reports the latched hover state.
func (c *InteractiveComponent) MouseEntered() bool { return c.entered }

// Entity returns the linked ECS entity ID.
func (c *InteractiveComponent) Entity() uint32 { return c.EntityID }

func (c *InteractiveComponent) OnMouseDown(e Event)  { c.listeners.fire(e.as(EventMouseDown)) }
func (c *InteractiveComponent) OnMouseUp(e Event)    { c.listeners.fire(e.as(EventMouseUp)) }
func (c *InteractiveComponent) OnMouseWheel(e Event) { c.listeners.fire(e.as(EventMouseWheel)) }
func (c *InteractiveComponent) OnMouseMove(e Event)  { c.listeners.fire(e.as(EventMouseMove)) }
func (c *InteractiveComponent) OnKeyDown(e Event)    { c.listeners.fire(e.as(EventKeyDown)) }
func (c *InteractiveComponent) OnKeyUp(e Event)      { c.listeners.fire(e.as(EventKeyUp)) }

// OnMouseEnter latches the hover state and fires enter listeners.
func (c *InteractiveComponent) OnMouseEnter(e Event) {
	c.entered = true
	c.listeners.fire(e.as(EventMouseEnter))
}

// OnMouseLeave clears the hover state and fires leave listeners.
func (c *InteractiveComponent) OnMouseLeave(e Event) {
	c.entered = false
	c.listeners.fire(e.as(EventMouseLeave))
}

// fireClick fires click listeners.
func (c *InteractiveComponent) fireClick(e Event) {
	c.listeners.fire(e.as(EventClick))
}

