package controllable

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	start  []gestureHandler
	update []gestureHandler
	end    []gestureHandler
	nextID uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event GestureEventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case GestureStart:
		h.reg.start = removeGestureHandler(h.reg.start, h.id)
	case GestureUpdate:
		h.reg.update = removeGestureHandler(h.reg.update, h.id)
	case GestureEnd:
		h.reg.end = removeGestureHandler(h.reg.end, h.id)
	}
}

func removeGestureHandler(s []gestureHandler, id uint32) []gestureHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event GestureEventType, fn func(GestureEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	h := gestureHandler{id: id, fn: fn}
	switch event {
	case GestureStart:
		r.start = append(r.start, h)
	case GestureUpdate:
		r.update = append(r.update, h)
	case GestureEnd:
		r.end = append(r.end, h)
	}
	return CallbackHandle{id: id, reg: r, event: event}
}

// OnGestureStart registers a callback fired when a gesture mode activates.
func (m *Manipulator) OnGestureStart(fn func(GestureEvent)) CallbackHandle {
	return m.handlers.add(GestureStart, fn)
}

// OnGesture registers a callback fired after each integrated pointer-move.
func (m *Manipulator) OnGesture(fn func(GestureEvent)) CallbackHandle {
	return m.handlers.add(GestureUpdate, fn)
}

// OnGestureEnd registers a callback fired when a gesture returns to idle.
// The event's Mode is the mode that just ended.
func (m *Manipulator) OnGestureEnd(fn func(GestureEvent)) CallbackHandle {
	return m.handlers.add(GestureEnd, fn)
}

// SetEventSink forwards every gesture event to sink. Pass nil to detach.
func (m *Manipulator) SetEventSink(sink EventSink) {
	m.sink = sink
}

// --- Event dispatch ---

func (m *Manipulator) fire(t GestureEventType, mode Mode, x, y float64) {
	ev := GestureEvent{
		Type:      t,
		Mode:      mode,
		PointerID: m.pointerID,
		ClientX:   x,
		ClientY:   y,
		Geometry:  m.geom,
	}
	var hs []gestureHandler
	switch t {
	case GestureStart:
		hs = m.handlers.start
	case GestureUpdate:
		hs = m.handlers.update
	case GestureEnd:
		hs = m.handlers.end
	}
	for _, h := range hs {
		h.fn(ev)
	}
	if m.sink != nil {
		m.sink.EmitGesture(ev)
	}
}
