package controllable

import (
	"bytes"
	"strings"
	"testing"
)

// drain consumes injected events the way Update does, minus real mouse input.
func drain(s *Surface) int {
	n := 0
	for {
		if s.runner != nil {
			s.runner.step(s)
		}
		if !s.processInjectedInput() {
			if s.runner == nil || s.runner.Done() {
				return n
			}
		}
		n++
		if n > 1000 {
			panic("drain: runaway script")
		}
	}
}

func newSurfaceWithBox(t *testing.T, cfg Config) (*Surface, *Manipulator) {
	t.Helper()
	s := NewSurface()
	m := New("box", cfg)
	s.Add(m)
	return s, m
}

func TestSurfaceAddMounts(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())
	if !m.Mounted() {
		t.Fatal("Add should mount")
	}
	if got := m.Bounds(); got.Width != 100 {
		t.Errorf("bounds = %+v", got)
	}
	s.Add(m)
	if len(s.Manipulators()) != 1 {
		t.Errorf("duplicate Add: %d manipulators", len(s.Manipulators()))
	}
}

func TestSurfaceHitTestOrder(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())

	tests := []struct {
		name string
		x, y float64
		want *Element
	}{
		{"body", 50, 50, m.Box()},
		{"corner handle over body", 1, 1, m.Handle(1)},
		{"right handle", 100, 50, m.Handle(4)},
		{"rotate knob", 50, -12, m.RotateHandle()},
		{"nothing", 300, 300, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.hitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("hitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSurfaceLaterManipulatorOnTop(t *testing.T) {
	s, a := newSurfaceWithBox(t, DefaultConfig())
	b := New("top", DefaultConfig())
	b.SetPosition(50, 50)
	s.Add(b)

	if got := s.hitTest(75, 75); got != b.Box() {
		t.Errorf("overlap hit = %v, want top box", got)
	}
	if got := s.hitTest(25, 25); got != a.Box() {
		t.Errorf("hit = %v, want bottom box", got)
	}
}

func TestSurfaceDragWithCapture(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if !m.Dragging() {
		t.Fatal("press on body should start a drag")
	}
	if s.Captured(0) != m.Container() {
		t.Fatalf("captured = %v, want container", s.Captured(0))
	}

	// Far outside the box: capture keeps the gesture alive.
	s.processPointer(0, 500, 300, true, MouseButtonLeft)
	if g := m.Geometry(); g.Left != "450px" || g.Top != "250px" {
		t.Errorf("offset = %s, %s; want 450px, 250px", g.Left, g.Top)
	}

	s.processPointer(0, 500, 300, false, MouseButtonLeft)
	if m.Mode().Active() {
		t.Error("release should end the drag")
	}
	if s.Captured(0) != nil {
		t.Error("capture not released")
	}
	if got := m.Bounds(); got.X != 450 || got.Y != 250 {
		t.Errorf("bounds = %+v", got)
	}
}

func TestSurfaceDragWithoutCaptureStallsOutside(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CapturePointer = false
	s, m := newSurfaceWithBox(t, cfg)

	var ends int
	m.OnGestureEnd(func(GestureEvent) { ends++ })

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if s.Captured(0) != nil {
		t.Fatal("capture taken although disabled")
	}
	s.processPointer(0, 500, 300, true, MouseButtonLeft)
	if m.Geometry().Left != "0px" {
		t.Errorf("move outside delivered without capture: left = %s", m.Geometry().Left)
	}
	s.processPointer(0, 500, 300, false, MouseButtonLeft)
	if !m.Dragging() {
		t.Error("up outside should not reach the manipulator")
	}

	// A later press on the box completes the stale drag and starts anew.
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if ends != 1 || !m.Dragging() {
		t.Errorf("ends = %d, mode = %v", ends, m.Mode())
	}
}

func TestSurfaceDownCompletesStaleGestureOnOtherBox(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CapturePointer = false
	s, a := newSurfaceWithBox(t, cfg)
	b := New("right", cfg)
	b.SetPosition(200, 0)
	s.Add(b)

	var aEnds int
	a.OnGestureEnd(func(GestureEvent) { aEnds++ })

	// Drag a, lose the up outside both boxes.
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 400, 400, true, MouseButtonLeft)
	s.processPointer(0, 400, 400, false, MouseButtonLeft)
	if !a.Dragging() {
		t.Fatal("a should still be dragging after a lost up")
	}

	s.processPointer(0, 250, 50, true, MouseButtonLeft)
	if a.Mode().Active() || aEnds != 1 {
		t.Errorf("a mode = %v, ends = %d; want idle, 1", a.Mode(), aEnds)
	}
	if !b.Dragging() {
		t.Fatalf("b mode = %v, want dragging", b.Mode())
	}

	// Moving back over a no longer drags it.
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if got := a.Geometry().Left; got != "0px" {
		t.Errorf("a left = %s, want 0px", got)
	}
}

func TestSurfaceDownOnEmptySpaceCompletesStaleGesture(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CapturePointer = false
	s, m := newSurfaceWithBox(t, cfg)

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 400, 400, true, MouseButtonLeft)
	s.processPointer(0, 400, 400, false, MouseButtonLeft)
	s.processPointer(0, 400, 400, true, MouseButtonLeft)
	if m.Mode().Active() {
		t.Errorf("mode = %v, want idle", m.Mode())
	}
}

func TestSurfaceResizeRightHandle(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())
	s.processPointer(0, 100, 50, true, MouseButtonLeft)
	s.processPointer(0, 110, 50, true, MouseButtonLeft)
	s.processPointer(0, 110, 50, false, MouseButtonLeft)
	if got := m.Geometry().Width; got != "120px" {
		t.Errorf("width = %s, want 120px", got)
	}
	if m.Mode().Active() {
		t.Error("resize still active")
	}
}

func TestSurfaceRotate(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())
	s.processPointer(0, 50, -12, true, MouseButtonLeft)
	if !m.Rotating() {
		t.Fatal("press on knob should rotate")
	}
	s.processPointer(0, 100, 50, true, MouseButtonLeft)
	if got := m.Geometry().Rotate; got != "90deg" {
		t.Errorf("rotate = %s, want 90deg", got)
	}
	s.processPointer(0, 100, 50, false, MouseButtonLeft)
	if m.Rotating() {
		t.Error("rotation still active")
	}
}

func TestSurfaceCursor(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())

	s.processPointer(0, 100, 50, false, MouseButtonLeft)
	if got := s.Cursor(); got != "ew-resize" {
		t.Errorf("hover right handle cursor = %q", got)
	}
	s.processPointer(0, 300, 300, false, MouseButtonLeft)
	if got := s.Cursor(); got != "" {
		t.Errorf("hover nothing cursor = %q", got)
	}
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 400, 400, true, MouseButtonLeft)
	if got := s.Cursor(); got != "grabbing" {
		t.Errorf("dragging cursor = %q", got)
	}
	s.processPointer(0, 400, 400, false, MouseButtonLeft)
	_ = m
}

func TestSurfaceRemove(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.Remove(m)
	if len(s.Manipulators()) != 0 {
		t.Error("manipulator not removed")
	}
	if s.Captured(0) != nil {
		t.Error("capture survived removal")
	}
	if m.Mounted() || m.Mode().Active() {
		t.Error("removed manipulator still mounted or active")
	}
	// Further input is harmless.
	s.processPointer(0, 60, 60, true, MouseButtonLeft)
	s.processPointer(0, 60, 60, false, MouseButtonLeft)
}

func TestSurfaceCaptureBounds(t *testing.T) {
	s := NewSurface()
	el := New("x", DefaultConfig()).Box()
	s.SetPointerCapture(-1, el)
	s.SetPointerCapture(maxPointers, el)
	if s.Captured(-1) != nil || s.Captured(maxPointers) != nil {
		t.Error("out of range capture should be ignored")
	}
	s.SetPointerCapture(4, el)
	if s.Captured(4) != el {
		t.Error("capture not stored")
	}
	s.ReleasePointerCapture(4)
	if s.Captured(4) != nil {
		t.Error("capture not released")
	}
}

func TestSurfaceInjectDrag(t *testing.T) {
	s, m := newSurfaceWithBox(t, DefaultConfig())
	s.InjectDrag(50, 50, 90, 70, 6)
	if s.Pending() != 6 {
		t.Fatalf("pending = %d, want 6", s.Pending())
	}
	if n := drain(s); n != 6 {
		t.Errorf("consumed %d events, want 6", n)
	}
	g := m.Geometry()
	if g.Left != "40px" || g.Top != "20px" {
		t.Errorf("offset = %s, %s; want 40px, 20px", g.Left, g.Top)
	}
	if m.Mode().Active() {
		t.Error("drag not finished")
	}
}

func TestSurfaceInjectDragMinimumFrames(t *testing.T) {
	s, _ := newSurfaceWithBox(t, DefaultConfig())
	s.InjectDrag(0, 0, 10, 10, 0)
	if s.Pending() != 2 {
		t.Errorf("pending = %d, want 2", s.Pending())
	}
}

func TestSurfaceDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	old := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = old }()

	s, _ := newSurfaceWithBox(t, DefaultConfig())
	s.SetDebug(true)
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 50, 50, false, MouseButtonLeft)
	if out := buf.String(); !strings.Contains(out, "[controllable] surface: down pointer 0 on box/box (started=true)") {
		t.Errorf("unexpected debug output %q", out)
	}
}

func TestCursorShapeMapping(t *testing.T) {
	hints := []string{"", "grab", "grabbing", "pointer", "ns-resize", "ew-resize", "nwse-resize", "nesw-resize", "bogus"}
	seen := map[string]bool{}
	for _, h := range hints {
		_ = cursorShape(h)
		seen[h] = true
	}
	if len(seen) != len(hints) {
		t.Error("duplicate hints")
	}
	if cursorShape("ew-resize") == cursorShape("ns-resize") {
		t.Error("ew and ns resize should map to different shapes")
	}
}
