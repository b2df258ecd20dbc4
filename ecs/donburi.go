package ecs

import (
	"github.com/phanxgames/replex"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for replex interaction
// events.
var InteractionEventType = events.NewEventType[replex.InteractionEvent]()

// DonburiStore is a replex.EntityStore that publishes interaction events
// into a Donburi world. Events for EntityID 0 and for kinds outside the
// store's filter are dropped.
type DonburiStore struct {
	world donburi.World
	kinds [replex.EventKindCount]bool
	all   bool

	published, dropped int
}

// NewDonburiStore creates a store publishing every event kind to
// InteractionEventType in world. Consume the events with Subscribe or
// SubscribeKind and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, all: true}
}

// OnlyKinds restricts publishing to the given kinds and returns s. Calling
// it with no kinds drops every event.
func (s *DonburiStore) OnlyKinds(kinds ...replex.EventKind) *DonburiStore {
	s.all = false
	s.kinds = [replex.EventKindCount]bool{}
	for _, k := range kinds {
		if int(k) < len(s.kinds) {
			s.kinds[k] = true
		}
	}
	return s
}

// EmitEvent publishes event unless it is unlinked or filtered out.
func (s *DonburiStore) EmitEvent(event replex.InteractionEvent) {
	if event.EntityID == 0 || !s.accepts(event.Kind) {
		s.dropped++
		return
	}
	s.published++
	InteractionEventType.Publish(s.world, event)
}

func (s *DonburiStore) accepts(k replex.EventKind) bool {
	if s.all {
		return true
	}
	return int(k) < len(s.kinds) && s.kinds[k]
}

// Published returns the number of events handed to Donburi.
func (s *DonburiStore) Published() int { return s.published }

// Dropped returns the number of events filtered out.
func (s *DonburiStore) Dropped() int { return s.dropped }

// SubscribeKind registers fn for interaction events of one kind in world.
func SubscribeKind(world donburi.World, kind replex.EventKind, fn func(w donburi.World, e replex.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e replex.InteractionEvent) {
		if e.Kind == kind {
			fn(w, e)
		}
	})
}
