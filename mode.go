package controllable

import "fmt"

// ModeKind distinguishes the gesture modes of a Manipulator.
type ModeKind uint8

const (
	ModeIdle     ModeKind = iota // no gesture in progress
	ModeDragging                 // translating the box
	ModeRotating                 // rotating the box about its cached center
	ModeResizing                 // resizing via one of the eight handles
)

// Mode is the gesture state of a Manipulator. Only ModeResizing carries a
// handle index (1..8); the other kinds always have Handle == 0. Since a Mode
// holds a single kind, two gestures can never be active at once.
type Mode struct {
	Kind   ModeKind
	Handle int
}

// Idle returns the idle mode.
func Idle() Mode { return Mode{} }

// Dragging returns the drag mode.
func Dragging() Mode { return Mode{Kind: ModeDragging} }

// Rotating returns the rotate mode.
func Rotating() Mode { return Mode{Kind: ModeRotating} }

// Resizing returns the resize mode for the given handle. An index outside
// 1..8 yields Idle.
func Resizing(handle int) Mode {
	if handle < 1 || handle > HandleCount {
		return Idle()
	}
	return Mode{Kind: ModeResizing, Handle: handle}
}

// Active reports whether a gesture is in progress.
func (m Mode) Active() bool {
	return m.Kind != ModeIdle
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m.Kind {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeRotating:
		return "rotating"
	case ModeResizing:
		return fmt.Sprintf("resizing(%d)", m.Handle)
	default:
		return "unknown"
	}
}
