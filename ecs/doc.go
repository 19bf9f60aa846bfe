// Package ecs publishes controllable gestures into a [Donburi] world.
//
// Attach [NewDonburiSink] to a manipulator and every start, update and end
// is queued as a [GestureEventType] event. Systems subscribe to the type, or
// use [OnGestureEnd] to see only committed geometry:
//
//	box.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.OnGestureEnd(world, func(ev controllable.GestureEvent) {
//		save(ev.Geometry)
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
