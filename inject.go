package controllable

// pointerSample is one queued mouse reading in client coordinates. Surface
// consumes a single sample per Update in place of the real cursor.
type pointerSample struct {
	x, y    float64
	pressed bool
}

func (s *Surface) enqueue(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, pointerSample{x: x, y: y, pressed: pressed})
}

// InjectPress queues a left-button press at (x, y). Pressing on a box body,
// knob or handle starts the matching gesture.
func (s *Surface) InjectPress(x, y float64) { s.enqueue(x, y, true) }

// InjectMove queues a sample with the button still held, advancing the
// active gesture.
func (s *Surface) InjectMove(x, y float64) { s.enqueue(x, y, true) }

// InjectHover queues a sample with no button held.
func (s *Surface) InjectHover(x, y float64) { s.enqueue(x, y, false) }

// InjectRelease queues a release at (x, y), ending the active gesture.
func (s *Surface) InjectRelease(x, y float64) { s.enqueue(x, y, false) }

// InjectDrag queues a whole gesture spread over frames samples: a press at
// the start point, evenly spaced held samples, and a release at the end
// point. frames below 2 is treated as 2.
func (s *Surface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued samples.
func (s *Surface) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput feeds the oldest queued sample to the mouse pointer.
// It reports false when the queue is empty.
func (s *Surface) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	next := s.injectQueue[0]
	s.injectQueue = s.injectQueue[1:]
	s.processPointer(0, next.x, next.y, next.pressed, MouseButtonLeft)
	return true
}
