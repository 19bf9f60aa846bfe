package controllable

import "gonum.org/v1/gonum/spatial/r2"

// Manipulator is an interactive transform box. It owns the box Geometry, the
// gesture Mode and the cached bounding rectangle used as the rotation pivot.
//
// Pointer-down classifies the hit element into at most one mode, pointer-move
// integrates the mode's deltas into the geometry and pointer-up returns to
// idle. A Manipulator is driven from a single event loop and is not safe for
// concurrent use.
type Manipulator struct {
	Name string

	cfg  Config
	geom Geometry
	mode Mode

	pointerID    int
	captured     bool
	lastX, lastY float64

	// Rotation pivot; refreshed at mount and after drag or resize.
	bounds  Rect
	mounted bool

	// Client position of the container's top-left corner.
	originX, originY float64

	container *Element
	box       *Element
	rotate    *Element
	handles   [HandleCount]*Element

	capturer     PointerCapturer
	boundsSource BoundsSource
	sink         EventSink
	handlers     handlerRegistry

	debug bool
}

// New creates a manipulator seeded from cfg. The bounds cache stays empty
// until Mount.
func New(name string, cfg Config) *Manipulator {
	m := &Manipulator{
		Name:  name,
		cfg:   cfg,
		geom:  newGeometry(cfg),
		debug: cfg.Debug,
	}
	m.container = newElement(m, ElementContainer, 0)
	m.box = newElement(m, ElementBody, 0)
	m.rotate = newElement(m, ElementRotateHandle, 0)
	for i := range m.handles {
		m.handles[i] = newElement(m, ElementResizeHandle, i+1)
	}
	return m
}

// --- Introspection ---

// Config returns the current configuration.
func (m *Manipulator) Config() Config { return m.cfg }

// Geometry returns a snapshot of the box geometry.
func (m *Manipulator) Geometry() Geometry { return m.geom }

// Mode returns the active gesture mode.
func (m *Manipulator) Mode() Mode { return m.mode }

// Dragging reports whether a drag gesture is active.
func (m *Manipulator) Dragging() bool { return m.mode.Kind == ModeDragging }

// Rotating reports whether a rotate gesture is active.
func (m *Manipulator) Rotating() bool { return m.mode.Kind == ModeRotating }

// Resizing returns the active resize handle index, or 0 when not resizing.
func (m *Manipulator) Resizing() int {
	if m.mode.Kind != ModeResizing {
		return 0
	}
	return m.mode.Handle
}

// Bounds returns the cached bounding rectangle used as the rotation pivot.
func (m *Manipulator) Bounds() Rect { return m.bounds }

// Mounted reports whether the manipulator is mounted.
func (m *Manipulator) Mounted() bool { return m.mounted }

// Container returns the container element.
func (m *Manipulator) Container() *Element { return m.container }

// Box returns the box body element.
func (m *Manipulator) Box() *Element { return m.box }

// RotateHandle returns the rotate knob element.
func (m *Manipulator) RotateHandle() *Element { return m.rotate }

// Handle returns resize handle i (1..8), or nil for an invalid index.
func (m *Manipulator) Handle(i int) *Element {
	if i < 1 || i > HandleCount {
		return nil
	}
	return m.handles[i-1]
}

// Position returns the client position of the container.
func (m *Manipulator) Position() (x, y float64) { return m.originX, m.originY }

// --- Lifecycle ---

// SetPosition places the container's top-left corner in client space. The
// bounds cache is not refreshed; call RefreshBounds if needed.
func (m *Manipulator) SetPosition(x, y float64) {
	m.originX = x
	m.originY = y
}

// SetBoundsSource overrides the source of rotation-pivot rectangles. Pass nil
// to use the box element again.
func (m *Manipulator) SetBoundsSource(src BoundsSource) {
	m.boundsSource = src
}

// Mount attaches the manipulator to a pointer capturer (which may be nil)
// and takes the first bounds snapshot.
func (m *Manipulator) Mount(c PointerCapturer) {
	m.capturer = c
	m.mounted = true
	m.RefreshBounds()
	m.debugf("mounted, bounds %+v", m.bounds)
}

// Unmount abandons any active gesture, releases capture and discards the
// bounds cache. Geometry is kept.
func (m *Manipulator) Unmount() {
	if m.mode.Active() {
		m.endCapture()
		m.mode = Idle()
	}
	m.capturer = nil
	m.bounds = Rect{}
	m.mounted = false
	m.debugf("unmounted")
}

// RefreshBounds re-reads the on-screen rectangle of the box into the cache.
func (m *Manipulator) RefreshBounds() {
	var src BoundsSource = m.box
	if m.boundsSource != nil {
		src = m.boundsSource
	}
	m.bounds = src.BoundingClientRect()
}

// SetConfig replaces the configuration, including the debug switch. If the
// active gesture's family is disabled by cfg, the gesture is completed first.
// Geometry is not re-seeded.
func (m *Manipulator) SetConfig(cfg Config) {
	old := m.mode
	m.cfg = cfg
	m.debug = cfg.Debug
	if old.Active() && !m.enabled(old) {
		m.finish(m.lastX, m.lastY)
	}
}

// enabled reports whether mode's gesture family is enabled.
func (m *Manipulator) enabled(mode Mode) bool {
	switch mode.Kind {
	case ModeDragging:
		return m.cfg.EnableDrag
	case ModeRotating:
		return m.cfg.EnableRotate
	case ModeResizing:
		return m.cfg.EnableScale
	default:
		return false
	}
}

// --- Gesture classifier ---

// classify maps a hit element to the mode it would start.
func (m *Manipulator) classify(target *Element) Mode {
	if target == nil || target.owner != m {
		return Idle()
	}
	var mode Mode
	switch target.Kind {
	case ElementBody:
		mode = Dragging()
	case ElementRotateHandle:
		mode = Rotating()
	case ElementResizeHandle:
		mode = Resizing(target.Handle)
	default:
		return Idle()
	}
	if !m.enabled(mode) {
		return Idle()
	}
	return mode
}

// PointerDown classifies ev.Target and starts the matching gesture. A down
// that arrives while a gesture is active first completes that gesture, as if
// its pointer-up had been received. Reports whether a gesture started.
func (m *Manipulator) PointerDown(ev PointerEvent) bool {
	if m.mode.Active() {
		m.debugf("pointer %d down during %s, completing it", ev.PointerID, m.mode)
		m.finish(ev.ClientX, ev.ClientY)
	}
	mode := m.classify(ev.Target)
	if !mode.Active() {
		return false
	}
	m.mode = mode
	m.pointerID = ev.PointerID
	m.lastX, m.lastY = ev.ClientX, ev.ClientY
	m.beginCapture(ev.PointerID)
	m.debugf("%s start, pointer %d", mode, ev.PointerID)
	m.fire(GestureStart, mode, ev.ClientX, ev.ClientY)
	return true
}

// --- Gesture integrator ---

// PointerMove integrates ev into the geometry according to the active mode.
// Moves while idle, or from a pointer other than the gesture's, are ignored.
func (m *Manipulator) PointerMove(ev PointerEvent) {
	if !m.mode.Active() || ev.PointerID != m.pointerID {
		return
	}
	m.lastX, m.lastY = ev.ClientX, ev.ClientY

	switch m.mode.Kind {
	case ModeDragging:
		s := m.cfg.DragSpeed
		m.geom.Left = addPx(m.geom.Left, ev.MovementX*s)
		m.geom.Top = addPx(m.geom.Top, ev.MovementY*s)
	case ModeRotating:
		deg := bearing(m.bounds.Center(), r2.Vec{X: ev.ClientX, Y: ev.ClientY})
		m.geom.Rotate = CSSValue(FormatLength(deg*m.cfg.RotateSpeed, "deg"))
	case ModeResizing:
		h, _ := HandleAt(m.mode.Handle)
		s := m.cfg.ScaleSpeed
		m.geom.Width = addPx(m.geom.Width, ev.MovementX*h.WidthFactor*s)
		m.geom.Left = addPx(m.geom.Left, ev.MovementX*h.LeftFactor*s)
		m.geom.Height = addPx(m.geom.Height, ev.MovementY*h.HeightFactor*s)
		m.geom.Top = addPx(m.geom.Top, ev.MovementY*h.TopFactor*s)
	}
	m.fire(GestureUpdate, m.mode, ev.ClientX, ev.ClientY)
}

// --- Gesture termination ---

// PointerUp ends the active gesture. An up while idle, or from another
// pointer, is a no-op.
func (m *Manipulator) PointerUp(ev PointerEvent) {
	if !m.mode.Active() || ev.PointerID != m.pointerID {
		return
	}
	m.finish(ev.ClientX, ev.ClientY)
}

// finish returns to idle, releases capture and refreshes the bounds cache
// after a drag or resize. Rotation leaves the box center in place, so the
// cache is kept.
func (m *Manipulator) finish(x, y float64) {
	ended := m.mode
	m.mode = Idle()
	m.endCapture()
	if ended.Kind == ModeDragging || ended.Kind == ModeResizing {
		m.RefreshBounds()
	}
	m.debugf("%s end, %s", ended, debugGeometry(m.geom))
	m.fire(GestureEnd, ended, x, y)
}
