// Package ecs bridges colorific board events into ECS worlds.
package ecs

import (
	"github.com/phanxgames/colorific"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BoardEventType is the Donburi event type for board events.
// Subscribe to this in your ECS systems to receive settle, turn and game-over
// notifications.
var BoardEventType = events.NewEventType[colorific.BoardEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Board events are published to BoardEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) colorific.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event colorific.BoardEvent) {
	BoardEventType.Publish(s.world, event)
}
