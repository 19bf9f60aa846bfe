package ecs

import (
	"github.com/phanxgames/controllable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries manipulator gestures through a Donburi world.
// A gesture publishes one start, any number of updates and one end.
var GestureEventType = events.NewEventType[controllable.GestureEvent]()

// worldSink queues gestures on a world until the next ProcessEvents.
type worldSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink that queues every gesture of a
// manipulator on world under GestureEventType.
func NewDonburiSink(world donburi.World) controllable.EventSink {
	return worldSink{world: world}
}

func (s worldSink) EmitGesture(ev controllable.GestureEvent) {
	GestureEventType.Publish(s.world, ev)
}

// OnGestureEnd subscribes fn to the last event of each gesture. Its Geometry
// is the committed box state, which is what most systems persist.
func OnGestureEnd(world donburi.World, fn func(controllable.GestureEvent)) {
	GestureEventType.Subscribe(world, func(_ donburi.World, ev controllable.GestureEvent) {
		if ev.Type == controllable.GestureEnd {
			fn(ev)
		}
	})
}
