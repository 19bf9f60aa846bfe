package controllable

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle in client (screen) pixels. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() r2.Vec {
	return r2.Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Left returns the smaller x edge, which is X+Width for a negative width.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Top returns the smaller y edge, which is Y+Height for a negative height.
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// normalized returns an equivalent rectangle with non-negative size.
func (r Rect) normalized() Rect {
	w, h := r.Width, r.Height
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	return Rect{X: r.Left(), Y: r.Top(), Width: w, Height: h}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerEvent is a single pointer sample delivered to a Manipulator.
// ClientX/ClientY are absolute client coordinates; MovementX/MovementY are the
// deltas since the previous sample of the same pointer.
type PointerEvent struct {
	PointerID int
	Target    *Element
	ClientX   float64
	ClientY   float64
	MovementX float64
	MovementY float64
	Button    MouseButton
}

// GestureEventType identifies a phase of a gesture.
type GestureEventType uint8

const (
	GestureStart  GestureEventType = iota // fires when pointer-down activates a mode
	GestureUpdate                         // fires after each integrated pointer-move
	GestureEnd                            // fires when the active mode returns to idle
)

func (t GestureEventType) String() string {
	switch t {
	case GestureStart:
		return "start"
	case GestureUpdate:
		return "update"
	case GestureEnd:
		return "end"
	default:
		return "unknown"
	}
}

// GestureEvent carries a gesture phase together with a geometry snapshot.
type GestureEvent struct {
	Type      GestureEventType
	Mode      Mode
	PointerID int
	ClientX   float64
	ClientY   float64
	Geometry  Geometry
}

// EventSink is the interface for optional gesture forwarding, for example
// into an ECS world. See the ecs submodule.
type EventSink interface {
	EmitGesture(event GestureEvent)
}
