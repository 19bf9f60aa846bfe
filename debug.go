package controllable

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// SetDebug enables gesture logging on stderr for this manipulator.
func (m *Manipulator) SetDebug(enabled bool) {
	m.debug = enabled
}

// debugf prints a manipulator diagnostic line when debug is enabled.
func (m *Manipulator) debugf(format string, args ...any) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[controllable] %s: %s\n", m.Name, fmt.Sprintf(format, args...))
}

// SetDebug enables routing diagnostics on stderr for this surface.
func (s *Surface) SetDebug(enabled bool) {
	s.debug = enabled
}

// debugf prints a surface diagnostic line when debug is enabled.
func (s *Surface) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[controllable] surface: %s\n", fmt.Sprintf(format, args...))
}

// debugGeometry formats a geometry snapshot for log lines.
func debugGeometry(g Geometry) string {
	return fmt.Sprintf("w=%s h=%s left=%s top=%s rotate=%s", g.Width, g.Height, g.Left, g.Top, g.Rotate)
}
