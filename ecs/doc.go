// Package ecs provides ECS adapters for colorific's board event system.
//
// The primary adapter is [NewDonburiSink], which bridges board events
// (settled, turn resolved, finished) into a [Donburi] world as typed events.
// Subscribe to [BoardEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
