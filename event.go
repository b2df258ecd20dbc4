package replex

import "github.com/hajimehoshi/ebiten/v2"

// Event carries pointer and keyboard data. Pointer coordinates are in the
// coordinate space of the surface currently dispatching the event.
type Event struct {
	Kind      EventKind
	X, Y      float64
	Button    MouseButton
	WheelX    float64
	WheelY    float64
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// Pos returns the pointer position.
func (e Event) Pos() Vec2 { return Vec2{e.X, e.Y} }

func (e Event) as(kind EventKind) Event {
	e.Kind = kind
	return e
}

func (e Event) translated(dx, dy float64) Event {
	e.X += dx
	e.Y += dy
	return e
}

// IsPointer reports whether the event carries a meaningful pointer position.
func (e Event) IsPointer() bool {
	return e.Kind != EventKeyDown && e.Kind != EventKeyUp
}

// EntityStore is the interface for optional ECS integration.
// When set on an App, events delivered to components with a non-zero
// EntityID are forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries an event together with the receiving entity.
type InteractionEvent struct {
	Event
	EntityID uint32
}

type entityLinked interface {
	Entity() uint32
}

func emitTo(store EntityStore, t any, e Event) {
	if store == nil {
		return
	}
	linked, ok := t.(entityLinked)
	if !ok || linked.Entity() == 0 {
		return
	}
	store.EmitEvent(InteractionEvent{Event: e, EntityID: linked.Entity()})
}
