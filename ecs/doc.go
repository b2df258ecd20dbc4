// Package ecs provides ECS adapters for replex's event dispatch.
//
// The primary adapter is [DonburiStore], which bridges events delivered to
// entity-linked components (pointer, wheel, key, enter/leave, click) into a
// [Donburi] world as typed events. Events for components without an entity
// are dropped, and [DonburiStore.OnlyKinds] narrows publishing further.
// Subscribe to [InteractionEventType], or to a single kind with
// [SubscribeKind], in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world).OnlyKinds(replex.EventClick)
//	app.SetEntityStore(store)
//	ecs.SubscribeKind(world, replex.EventClick, onClick)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
