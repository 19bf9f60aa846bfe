package controllable

// HandleCount is the number of resize handles around the box.
const HandleCount = 8

// HandleDescriptor describes one resize handle. Top and Left position the
// handle as fractions (0, 0.5 or 1) of the box height and width. The factor
// tuple maps pointer movement to changes of width, left, height and top.
//
// Width and height factors are ±2: moving one edge by Δ changes the dimension
// by 2Δ. The left and top factors are zero for every handle.
type HandleDescriptor struct {
	Index        int
	Top, Left    float64
	Cursor       string
	WidthFactor  float64
	LeftFactor   float64
	HeightFactor float64
	TopFactor    float64
}

// handleTable lists handles clockwise from the top-left corner.
var handleTable = [HandleCount]HandleDescriptor{
	{Index: 1, Top: 0, Left: 0, Cursor: "nwse-resize", WidthFactor: -2, HeightFactor: -2},
	{Index: 2, Top: 0, Left: 0.5, Cursor: "ns-resize", HeightFactor: -2},
	{Index: 3, Top: 0, Left: 1, Cursor: "nesw-resize", WidthFactor: 2, HeightFactor: -2},
	{Index: 4, Top: 0.5, Left: 1, Cursor: "ew-resize", WidthFactor: 2},
	{Index: 5, Top: 1, Left: 1, Cursor: "nwse-resize", WidthFactor: 2, HeightFactor: 2},
	{Index: 6, Top: 1, Left: 0.5, Cursor: "ns-resize", HeightFactor: 2},
	{Index: 7, Top: 1, Left: 0, Cursor: "nesw-resize", WidthFactor: -2, HeightFactor: 2},
	{Index: 8, Top: 0.5, Left: 0, Cursor: "ew-resize", WidthFactor: -2},
}

// HandleAt returns the descriptor for handle index i (1..8).
func HandleAt(i int) (HandleDescriptor, bool) {
	if i < 1 || i > HandleCount {
		return HandleDescriptor{}, false
	}
	return handleTable[i-1], true
}

// Handles returns a copy of all eight handle descriptors in index order.
func Handles() []HandleDescriptor {
	out := make([]HandleDescriptor, HandleCount)
	copy(out, handleTable[:])
	return out
}
