package ecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/replex"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var _ replex.EntityStore = (*DonburiStore)(nil)

func collect(world donburi.World) *[]replex.InteractionEvent {
	var received []replex.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e replex.InteractionEvent) {
		received = append(received, e)
	})
	return &received
}

func TestDonburiStoreEmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	received := collect(world)

	store.EmitEvent(replex.InteractionEvent{
		Event:    replex.Event{Kind: replex.EventMouseDown, X: 100, Y: 200, Button: replex.MouseButtonLeft},
		EntityID: 42,
	})
	store.EmitEvent(replex.InteractionEvent{
		Event:    replex.Event{Kind: replex.EventKeyDown, Key: ebiten.KeyA},
		EntityID: 7,
	})

	// Events are queued until processed.
	if len(*received) != 0 {
		t.Fatalf("received %d events before ProcessEvents, want 0", len(*received))
	}
	InteractionEventType.ProcessEvents(world)

	want := []replex.InteractionEvent{
		{Event: replex.Event{Kind: replex.EventMouseDown, X: 100, Y: 200, Button: replex.MouseButtonLeft}, EntityID: 42},
		{Event: replex.Event{Kind: replex.EventKeyDown, Key: ebiten.KeyA}, EntityID: 7},
	}
	if diff := cmp.Diff(want, *received); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if got := store.Published(); got != 2 {
		t.Errorf("Published() = %d, want 2", got)
	}
}

func TestDonburiStoreDropsUnlinked(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	received := collect(world)

	store.EmitEvent(replex.InteractionEvent{Event: replex.Event{Kind: replex.EventClick}})
	events.ProcessAllEvents(world)

	if len(*received) != 0 {
		t.Errorf("received %d events for EntityID 0, want 0", len(*received))
	}
	if store.Published() != 0 || store.Dropped() != 1 {
		t.Errorf("Published, Dropped = %d, %d, want 0, 1", store.Published(), store.Dropped())
	}
}

func TestDonburiStoreOnlyKinds(t *testing.T) {
	tests := []struct {
		name  string
		kinds []replex.EventKind
		emit  replex.EventKind
		want  bool
	}{
		{"listed kind", []replex.EventKind{replex.EventClick, replex.EventKeyDown}, replex.EventClick, true},
		{"other kind", []replex.EventKind{replex.EventClick}, replex.EventMouseMove, false},
		{"empty filter", nil, replex.EventClick, false},
		{"out of range kind ignored", []replex.EventKind{replex.EventKind(200)}, replex.EventClick, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := donburi.NewWorld()
			store := NewDonburiStore(world).OnlyKinds(tt.kinds...)
			received := collect(world)

			store.EmitEvent(replex.InteractionEvent{Event: replex.Event{Kind: tt.emit}, EntityID: 3})
			InteractionEventType.ProcessEvents(world)

			if got := len(*received) == 1; got != tt.want {
				t.Errorf("published = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubscribeKind(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var clicks, all int
	SubscribeKind(world, replex.EventClick, func(w donburi.World, e replex.InteractionEvent) {
		if e.Kind != replex.EventClick {
			t.Errorf("SubscribeKind delivered %v", e.Kind)
		}
		clicks++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e replex.InteractionEvent) {
		all++
	})

	for _, k := range []replex.EventKind{replex.EventMouseDown, replex.EventMouseUp, replex.EventClick} {
		store.EmitEvent(replex.InteractionEvent{Event: replex.Event{Kind: k}, EntityID: 5})
	}
	events.ProcessAllEvents(world)

	if clicks != 1 || all != 3 {
		t.Errorf("clicks, all = %d, %d, want 1, 3", clicks, all)
	}
}

func TestDonburiStoreDispatchedToLinkedEntity(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create()

	root := replex.NewSurfaceWithCanvas(replex.Vec2{}, replex.NewRecordingCanvas(replex.Size{W: 200, H: 100}))
	root.SetEntityStore(NewDonburiStore(world))

	linked := replex.NewTextBox(replex.Vec2{X: 10, Y: 10}, replex.Size{W: 50, H: 20}, replex.DefaultTextBoxStyle(), "ok")
	linked.EntityID = uint32(entity.Id())
	unlinked := replex.NewTextBox(replex.Vec2{X: 100, Y: 10}, replex.Size{W: 50, H: 20}, replex.DefaultTextBoxStyle(), "no")

	received := collect(world)

	root.DrawTextBox(linked)
	root.DrawTextBox(unlinked)
	root.Dispatch(replex.Event{Kind: replex.EventMouseDown, X: 20, Y: 20})
	root.Dispatch(replex.Event{Kind: replex.EventMouseDown, X: 120, Y: 20})
	InteractionEventType.ProcessEvents(world)

	if len(*received) != 1 {
		t.Fatalf("received %d events, want 1", len(*received))
	}
	got := (*received)[0]
	if got.EntityID != uint32(entity.Id()) {
		t.Errorf("EntityID = %d, want %d", got.EntityID, entity.Id())
	}
	if got.Kind != replex.EventMouseDown {
		t.Errorf("Kind = %v, want %v", got.Kind, replex.EventMouseDown)
	}
}
