package controllable

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Visual metrics of the handles, in pixels.
const (
	resizeHandleSize   = 8.0  // diameter of a resize handle dot
	rotateHandleSize   = 16.0 // diameter of the rotate knob
	rotateHandleOffset = 20.0 // distance from the box top edge to the knob's top
	handleHitSlop      = 2.0  // extra hit radius around handles
)

// ElementKind identifies the visual zone an Element represents.
type ElementKind uint8

const (
	ElementContainer    ElementKind = iota // positioned ancestor; receives captured events
	ElementBody                            // the box itself; starts a drag
	ElementRotateHandle                    // knob above the box; starts a rotation
	ElementResizeHandle                    // one of eight dots; starts a resize
)

func (k ElementKind) String() string {
	switch k {
	case ElementContainer:
		return "container"
	case ElementBody:
		return "body"
	case ElementRotateHandle:
		return "rotate"
	case ElementResizeHandle:
		return "resize"
	default:
		return "unknown"
	}
}

// --- Hit shapes ---

// HitShape defines a custom hit testing region in an element's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
// A negative width or height is treated as extending left or up.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return Rect(r).normalized().Contains(x, y)
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Element is one hit-testable zone of a Manipulator: the container, the box
// body, the rotate knob or a resize handle. Elements derive their layout from
// the owner's current Geometry, so they never go stale.
type Element struct {
	Name   string
	Kind   ElementKind
	Handle int    // 1..8 for resize handles, otherwise 0
	Cursor string // CSS-style cursor hint

	owner *Manipulator
}

func newElement(owner *Manipulator, kind ElementKind, handle int) *Element {
	e := &Element{Kind: kind, Handle: handle, owner: owner}
	switch kind {
	case ElementContainer:
		e.Name = owner.Name + "/container"
	case ElementBody:
		e.Name = owner.Name + "/box"
		e.Cursor = "grab"
	case ElementRotateHandle:
		e.Name = owner.Name + "/rotate"
		e.Cursor = "pointer"
	case ElementResizeHandle:
		e.Name = fmt.Sprintf("%s/handle%d", owner.Name, handle)
		if h, ok := HandleAt(handle); ok {
			e.Cursor = h.Cursor
		}
	}
	return e
}

// Owner returns the Manipulator the element belongs to.
func (e *Element) Owner() *Manipulator {
	return e.owner
}

// HitShape returns the element's hit region in its local coordinates.
// The container is local to its own origin; the other elements are local to
// the unrotated box.
func (e *Element) HitShape() HitShape {
	w, h := e.owner.geom.Size()
	switch e.Kind {
	case ElementRotateHandle:
		return HitCircle{
			CenterX: w / 2,
			CenterY: -rotateHandleOffset + rotateHandleSize/2,
			Radius:  rotateHandleSize/2 + handleHitSlop,
		}
	case ElementResizeHandle:
		d, _ := HandleAt(e.Handle)
		return HitCircle{
			CenterX: w * d.Left,
			CenterY: h * d.Top,
			Radius:  resizeHandleSize/2 + handleHitSlop,
		}
	default:
		return HitRect{Width: w, Height: h}
	}
}

// ClientToLocal converts a client-space point to the element's local space.
func (e *Element) ClientToLocal(cx, cy float64) (lx, ly float64) {
	m := e.owner
	if e.Kind == ElementContainer {
		return cx - m.originX, cy - m.originY
	}
	return newBoxFrame(m.originX, m.originY, m.geom).toLocal(cx, cy)
}

// LocalToClient converts a local-space point to client space.
func (e *Element) LocalToClient(lx, ly float64) (cx, cy float64) {
	m := e.owner
	if e.Kind == ElementContainer {
		return lx + m.originX, ly + m.originY
	}
	return newBoxFrame(m.originX, m.originY, m.geom).toClient(lx, ly)
}

// Contains reports whether the client-space point lies inside the element.
func (e *Element) Contains(cx, cy float64) bool {
	lx, ly := e.ClientToLocal(cx, cy)
	return e.HitShape().Contains(lx, ly)
}

// BoundingClientRect returns the element's axis-aligned bounds in client space.
func (e *Element) BoundingClientRect() Rect {
	m := e.owner
	switch e.Kind {
	case ElementContainer:
		w, h := m.geom.Size()
		return Rect{X: m.originX, Y: m.originY, Width: w, Height: h}.normalized()
	case ElementBody:
		return boxBounds(r2.Vec{X: m.originX, Y: m.originY}, m.geom)
	default:
		c := e.HitShape().(HitCircle)
		r := c.Radius - handleHitSlop
		x, y := e.LocalToClient(c.CenterX, c.CenterY)
		return Rect{X: x - r, Y: y - r, Width: 2 * r, Height: 2 * r}
	}
}
