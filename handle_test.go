package controllable

import "testing"

func TestHandleFactorTable(t *testing.T) {
	tests := []struct {
		index     int
		wf, lf    float64
		hf, tf    float64
		top, left float64
		cursor    string
	}{
		{1, -2, 0, -2, 0, 0, 0, "nwse-resize"},
		{2, 0, 0, -2, 0, 0, 0.5, "ns-resize"},
		{3, 2, 0, -2, 0, 0, 1, "nesw-resize"},
		{4, 2, 0, 0, 0, 0.5, 1, "ew-resize"},
		{5, 2, 0, 2, 0, 1, 1, "nwse-resize"},
		{6, 0, 0, 2, 0, 1, 0.5, "ns-resize"},
		{7, -2, 0, 2, 0, 1, 0, "nesw-resize"},
		{8, -2, 0, 0, 0, 0.5, 0, "ew-resize"},
	}
	for _, tt := range tests {
		h, ok := HandleAt(tt.index)
		if !ok {
			t.Fatalf("HandleAt(%d) not found", tt.index)
		}
		if h.Index != tt.index {
			t.Errorf("handle %d: Index = %d", tt.index, h.Index)
		}
		if h.WidthFactor != tt.wf || h.LeftFactor != tt.lf || h.HeightFactor != tt.hf || h.TopFactor != tt.tf {
			t.Errorf("handle %d factors = (%v,%v,%v,%v), want (%v,%v,%v,%v)", tt.index,
				h.WidthFactor, h.LeftFactor, h.HeightFactor, h.TopFactor, tt.wf, tt.lf, tt.hf, tt.tf)
		}
		if h.Top != tt.top || h.Left != tt.left {
			t.Errorf("handle %d position = (%v,%v), want (%v,%v)", tt.index, h.Top, h.Left, tt.top, tt.left)
		}
		if h.Cursor != tt.cursor {
			t.Errorf("handle %d cursor = %q, want %q", tt.index, h.Cursor, tt.cursor)
		}
	}
}

func TestHandleAtOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 0, 9} {
		if _, ok := HandleAt(i); ok {
			t.Errorf("HandleAt(%d) should not be found", i)
		}
	}
}

func TestHandlesReturnsCopy(t *testing.T) {
	hs := Handles()
	if len(hs) != HandleCount {
		t.Fatalf("len = %d, want %d", len(hs), HandleCount)
	}
	hs[0].WidthFactor = 99
	if h, _ := HandleAt(1); h.WidthFactor != -2 {
		t.Error("mutating Handles() result changed the table")
	}
}
