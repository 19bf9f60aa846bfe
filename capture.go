package controllable

// PointerCapturer redirects all subsequent events of a pointer to a fixed
// element regardless of where the pointer is. Surface implements it.
type PointerCapturer interface {
	SetPointerCapture(pointerID int, target *Element)
	ReleasePointerCapture(pointerID int)
}

// BoundsSource answers bounding-rectangle queries for the rotation pivot.
// By default a Manipulator queries its own box element.
type BoundsSource interface {
	BoundingClientRect() Rect
}

// beginCapture captures the gesture's pointer to the container when capture
// is enabled and a capturer is attached.
func (m *Manipulator) beginCapture(pointerID int) {
	if !m.cfg.CapturePointer || m.capturer == nil {
		return
	}
	m.capturer.SetPointerCapture(pointerID, m.container)
	m.captured = true
	m.debugf("capture pointer %d", pointerID)
}

// endCapture releases a capture taken by beginCapture. It is keyed by the
// pointer that started the gesture.
func (m *Manipulator) endCapture() {
	if !m.captured {
		return
	}
	m.captured = false
	if m.capturer != nil {
		m.capturer.ReleasePointerCapture(m.pointerID)
	}
	m.debugf("release pointer %d", m.pointerID)
}
