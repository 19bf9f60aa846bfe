package controllable

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse; others are free for direct callers

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	seen   bool
	lastX  float64
	lastY  float64
	hover  *Element
	button MouseButton // button captured at press time
}

// Surface hosts manipulators on an Ebitengine screen. It turns cursor samples
// into PointerEvents with movement deltas, routes them to the captured element
// or the topmost hit element, and implements PointerCapturer.
type Surface struct {
	manipulators []*Manipulator
	captured     [maxPointers]*Element
	pointers     [maxPointers]pointerState

	injectQueue []pointerSample
	runner      *ScriptRunner

	debug bool
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Add mounts m on the surface. Later manipulators are hit-tested first.
func (s *Surface) Add(m *Manipulator) {
	for _, existing := range s.manipulators {
		if existing == m {
			return
		}
	}
	s.manipulators = append(s.manipulators, m)
	m.Mount(s)
}

// Remove unmounts m and drops any capture held by its elements.
func (s *Surface) Remove(m *Manipulator) {
	for i, existing := range s.manipulators {
		if existing != m {
			continue
		}
		copy(s.manipulators[i:], s.manipulators[i+1:])
		s.manipulators[len(s.manipulators)-1] = nil
		s.manipulators = s.manipulators[:len(s.manipulators)-1]
		m.Unmount()
		for id, el := range s.captured {
			if el != nil && el.owner == m {
				s.captured[id] = nil
			}
		}
		for id := range s.pointers {
			if h := s.pointers[id].hover; h != nil && h.owner == m {
				s.pointers[id].hover = nil
			}
		}
		return
	}
}

// Manipulators returns the hosted manipulators in hit-test order, bottom first.
func (s *Surface) Manipulators() []*Manipulator {
	return s.manipulators
}

// --- Pointer capture ---

// SetPointerCapture routes all events for pointerID to target.
func (s *Surface) SetPointerCapture(pointerID int, target *Element) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = target
	}
}

// ReleasePointerCapture stops routing events for pointerID to a captured element.
func (s *Surface) ReleasePointerCapture(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// Captured returns the element capturing pointerID, or nil.
func (s *Surface) Captured(pointerID int) *Element {
	if pointerID < 0 || pointerID >= maxPointers {
		return nil
	}
	return s.captured[pointerID]
}

// --- Hit testing ---

// hitTest returns the topmost element of m at the client point, or nil.
// Handles sit above the rotate knob, which sits above the box body; the
// container is lowest.
func (m *Manipulator) hitTest(x, y float64) *Element {
	for i := HandleCount - 1; i >= 0; i-- {
		if m.handles[i].Contains(x, y) {
			return m.handles[i]
		}
	}
	if m.rotate.Contains(x, y) {
		return m.rotate
	}
	if m.box.Contains(x, y) {
		return m.box
	}
	if m.container.Contains(x, y) {
		return m.container
	}
	return nil
}

// hitTest finds the topmost element at (x, y) across all manipulators.
func (s *Surface) hitTest(x, y float64) *Element {
	for i := len(s.manipulators) - 1; i >= 0; i-- {
		if el := s.manipulators[i].hitTest(x, y); el != nil {
			return el
		}
	}
	return nil
}

// --- Input processing ---

// Update processes one frame of input. Injected events take precedence over
// the real mouse for the frame they are consumed in.
func (s *Surface) Update() {
	if s.runner != nil {
		s.runner.step(s)
	}
	if !s.processInjectedInput() {
		s.processMousePointer()
	}
	ebiten.SetCursorShape(cursorShape(s.Cursor()))
}

// processMousePointer handles mouse input (pointer 0).
func (s *Surface) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button to avoid
	// changing mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine for a single pointer and
// delivers down, move and up to the owner of the target element.
func (s *Surface) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]

	// Determine target element: captured element or hit test.
	target := s.captured[pointerID]
	if target == nil {
		target = s.hitTest(x, y)
	}
	ps.hover = target

	var dx, dy float64
	if ps.seen {
		dx = x - ps.lastX
		dy = y - ps.lastY
	}
	moved := dx != 0 || dy != 0

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ev := s.event(pointerID, target, x, y, dx, dy, button)
		// A press that also moved delivers the move first.
		if moved {
			s.dispatchMove(ev)
		}
		s.dispatchDown(ev)
	case !pressed && ps.down:
		ev := s.event(pointerID, target, x, y, dx, dy, ps.button)
		if moved {
			s.dispatchMove(ev)
		}
		s.dispatchUp(ev)

		// Auto-release capture.
		s.captured[pointerID] = nil
		ps.down = false
	case moved:
		b := button
		if ps.down {
			b = ps.button
		}
		s.dispatchMove(s.event(pointerID, target, x, y, dx, dy, b))
	}

	ps.lastX = x
	ps.lastY = y
	ps.seen = true
}

func (s *Surface) event(pointerID int, target *Element, x, y, dx, dy float64, button MouseButton) PointerEvent {
	return PointerEvent{
		PointerID: pointerID,
		Target:    target,
		ClientX:   x,
		ClientY:   y,
		MovementX: dx,
		MovementY: dy,
		Button:    button,
	}
}

// --- Event dispatch ---

// dispatchDown delivers a press. Gestures that pointer left running on other
// manipulators (an up lost while capture was off) are completed first, so at
// most one box follows a pointer.
func (s *Surface) dispatchDown(ev PointerEvent) {
	var owner *Manipulator
	if ev.Target != nil {
		owner = ev.Target.owner
	}
	for _, m := range s.manipulators {
		if m == owner || !m.mode.Active() || m.pointerID != ev.PointerID {
			continue
		}
		s.debugf("down pointer %d completes stale %s on %s", ev.PointerID, m.mode, m.Name)
		m.finish(ev.ClientX, ev.ClientY)
	}
	if ev.Target == nil {
		return
	}
	started := ev.Target.owner.PointerDown(ev)
	s.debugf("down pointer %d on %s (started=%v)", ev.PointerID, ev.Target.Name, started)
}

func (s *Surface) dispatchMove(ev PointerEvent) {
	if ev.Target == nil {
		return
	}
	ev.Target.owner.PointerMove(ev)
}

func (s *Surface) dispatchUp(ev PointerEvent) {
	if ev.Target == nil {
		s.debugf("up pointer %d outside any element", ev.PointerID)
		return
	}
	ev.Target.owner.PointerUp(ev)
	s.debugf("up pointer %d on %s", ev.PointerID, ev.Target.Name)
}

// --- Cursor ---

// Cursor returns the cursor hint for the mouse pointer: the active gesture's
// cursor while one is in progress, otherwise the hovered element's.
func (s *Surface) Cursor() string {
	ps := &s.pointers[0]
	if el := s.captured[0]; el != nil {
		return el.owner.gestureCursor()
	}
	if ps.hover == nil {
		return ""
	}
	if m := ps.hover.owner; m.mode.Active() {
		return m.gestureCursor()
	}
	return ps.hover.Cursor
}

// gestureCursor returns the cursor hint for the active mode.
func (m *Manipulator) gestureCursor() string {
	switch m.mode.Kind {
	case ModeDragging:
		return "grabbing"
	case ModeRotating:
		return "pointer"
	case ModeResizing:
		return m.handles[m.mode.Handle-1].Cursor
	default:
		return ""
	}
}

// cursorShape maps a cursor hint to an Ebitengine cursor shape.
func cursorShape(hint string) ebiten.CursorShapeType {
	switch hint {
	case "grab", "grabbing":
		return ebiten.CursorShapeMove
	case "pointer":
		return ebiten.CursorShapePointer
	case "ns-resize":
		return ebiten.CursorShapeNSResize
	case "ew-resize":
		return ebiten.CursorShapeEWResize
	case "nwse-resize":
		return ebiten.CursorShapeNWSEResize
	case "nesw-resize":
		return ebiten.CursorShapeNESWResize
	default:
		return ebiten.CursorShapeDefault
	}
}
