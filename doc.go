// Package controllable is an interactive transform box for [Ebitengine].
//
// A [Manipulator] lets the user drag, rotate and resize a box with the
// pointer. It owns the box [Geometry] (unit-suffixed values such as "100px"
// and "45deg"), a single gesture [Mode] and a cached bounding rectangle that
// serves as the rotation pivot.
//
// # Quick start
//
// Host one or more manipulators on a [Surface] and drive it from your game:
//
//	surface := controllable.NewSurface()
//	box := controllable.New("card", controllable.DefaultConfig())
//	box.SetPosition(120, 80)
//	surface.Add(box)
//
//	type Game struct{ surface *controllable.Surface }
//
//	func (g *Game) Update() error        { g.surface.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.surface.Draw(s) }
//
// # Gestures
//
// Pointer-down on the box body starts a drag, on the knob above the box a
// rotation, and on one of the eight dots around the perimeter a resize. Each
// family can be disabled in [Config]. While a gesture is active, the
// container captures the pointer (unless CapturePointer is off), so moves
// outside the box keep updating it.
//
// Drag adds movement times DragSpeed to left/top. Rotation assigns the bearing
// from the cached center to the pointer, with straight up as 0deg. Resize
// applies the handle's factor tuple (see [Handles]) to width and height.
// Sizes are never clamped.
//
// Manipulators can also be driven without a Surface by calling
// [Manipulator.PointerDown], [Manipulator.PointerMove] and
// [Manipulator.PointerUp] with your own [PointerEvent] values.
//
// # Configuration
//
// [LoadConfig] and [SaveConfig] read and write [Config] as TOML. Gesture
// events can be observed with callbacks or forwarded to a [Donburi] world
// with the controllable/ecs adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package controllable
