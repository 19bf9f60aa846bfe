package controllable

import "testing"

func newTestManipulator(t *testing.T, w, h string) *Manipulator {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InitialWidth = CSSValue(w)
	cfg.InitialHeight = CSSValue(h)
	return New("box", cfg)
}

func TestElementNamesAndCursors(t *testing.T) {
	m := newTestManipulator(t, "100px", "100px")
	if m.Container().Name != "box/container" || m.Box().Name != "box/box" {
		t.Errorf("names: %q, %q", m.Container().Name, m.Box().Name)
	}
	if m.Box().Cursor != "grab" {
		t.Errorf("box cursor = %q", m.Box().Cursor)
	}
	if got := m.Handle(4); got == nil || got.Name != "box/handle4" || got.Cursor != "ew-resize" {
		t.Errorf("handle 4 = %+v", got)
	}
	if m.Handle(0) != nil || m.Handle(9) != nil {
		t.Error("out of range handles should be nil")
	}
	if m.Handle(1).Owner() != m {
		t.Error("handle owner mismatch")
	}
}

func TestElementContains(t *testing.T) {
	m := newTestManipulator(t, "100px", "100px")
	m.SetPosition(10, 20)

	tests := []struct {
		name string
		el   *Element
		x, y float64
		want bool
	}{
		{"body center", m.Box(), 60, 70, true},
		{"body outside", m.Box(), 200, 70, false},
		{"container corner", m.Container(), 10, 20, true},
		{"rotate knob", m.RotateHandle(), 60, 8, true},
		{"rotate knob miss", m.RotateHandle(), 60, 40, false},
		{"handle 1 corner", m.Handle(1), 10, 20, true},
		{"handle 4 right edge", m.Handle(4), 110, 70, true},
		{"handle 4 slop", m.Handle(4), 115, 70, true},
		{"handle 4 miss", m.Handle(4), 120, 70, false},
		{"handle 6 bottom", m.Handle(6), 60, 120, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("%s.Contains(%v, %v) = %v, want %v", tt.el.Name, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestElementContainsRotated(t *testing.T) {
	m := newTestManipulator(t, "200px", "50px")
	m.geom.Rotate = "90deg"

	if m.Box().Contains(190, 25) {
		t.Error("unrotated far right point should miss after a quarter turn")
	}
	if !m.Box().Contains(100, 120) {
		t.Error("point below center should hit after a quarter turn")
	}
	if !m.Handle(4).Contains(100, 125) {
		t.Error("right handle should sit below the center after a quarter turn")
	}
	// The container does not rotate.
	if !m.Container().Contains(190, 25) {
		t.Error("container should not rotate")
	}
}

func TestElementNegativeSizeStillHittable(t *testing.T) {
	m := newTestManipulator(t, "-40px", "20px")
	if !m.Box().Contains(-20, 10) {
		t.Error("box with negative width should extend left")
	}
}

func TestElementLocalClientRoundTrip(t *testing.T) {
	m := newTestManipulator(t, "120px", "60px")
	m.SetPosition(30, 40)
	m.geom.Rotate = "30deg"
	m.geom.Left = "12px"

	for _, el := range []*Element{m.Container(), m.Box(), m.Handle(7)} {
		cx, cy := el.LocalToClient(15, 25)
		lx, ly := el.ClientToLocal(cx, cy)
		if !approxEqual(lx, 15, 1e-9) || !approxEqual(ly, 25, 1e-9) {
			t.Errorf("%s: round trip = (%v,%v)", el.Name, lx, ly)
		}
	}
}

func TestElementBoundingClientRect(t *testing.T) {
	m := newTestManipulator(t, "100px", "50px")
	m.SetPosition(10, 10)
	m.geom.Left = "5px"

	if got, want := m.Container().BoundingClientRect(), (Rect{10, 10, 100, 50}); !rectApprox(got, want) {
		t.Errorf("container = %+v, want %+v", got, want)
	}
	if got, want := m.Box().BoundingClientRect(), (Rect{15, 10, 100, 50}); !rectApprox(got, want) {
		t.Errorf("box = %+v, want %+v", got, want)
	}
	// Handle 5 sits on the bottom-right corner, 8px across.
	if got, want := m.Handle(5).BoundingClientRect(), (Rect{111, 56, 8, 8}); !rectApprox(got, want) {
		t.Errorf("handle 5 = %+v, want %+v", got, want)
	}
	// The rotate knob is 16px across, its top 20px above the box.
	if got, want := m.RotateHandle().BoundingClientRect(), (Rect{57, -10, 16, 16}); !rectApprox(got, want) {
		t.Errorf("rotate = %+v, want %+v", got, want)
	}
}

func TestHitShapes(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) || !r.Contains(110, 70) || r.Contains(5, 40) {
		t.Error("HitRect edges")
	}
	neg := HitRect{Width: -10, Height: 10}
	if !neg.Contains(-5, 5) || neg.Contains(5, 5) {
		t.Error("HitRect negative width")
	}
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}
	if !c.Contains(75, 50) || c.Contains(70, 70) {
		t.Error("HitCircle")
	}
}
