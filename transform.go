package controllable

import "math"

// boxFrame maps box-local points to client space. The box only ever
// translates and rotates, so the linear part is a pure rotation.
//
//	client = R(rotate) * (local - half) + origin + offset + half
//
// where half is (w/2, h/2).
type boxFrame struct {
	cos, sin float64
	tx, ty   float64
}

// newBoxFrame builds the frame of a box whose container sits at
// (originX, originY).
func newBoxFrame(originX, originY float64, g Geometry) boxFrame {
	w, h := g.Size()
	left, top := g.Offset()
	sin, cos := math.Sincos(g.Degrees() * math.Pi / 180)
	hw, hh := w/2, h/2
	return boxFrame{
		cos: cos,
		sin: sin,
		tx:  originX + left + hw - (cos*hw - sin*hh),
		ty:  originY + top + hh - (sin*hw + cos*hh),
	}
}

// toClient maps a box-local point to client space.
func (f boxFrame) toClient(x, y float64) (float64, float64) {
	return f.cos*x - f.sin*y + f.tx, f.sin*x + f.cos*y + f.ty
}

// toLocal maps a client point back into the box. The inverse of a rotation
// is its transpose.
func (f boxFrame) toLocal(x, y float64) (float64, float64) {
	dx, dy := x-f.tx, y-f.ty
	return f.cos*dx + f.sin*dy, -f.sin*dx + f.cos*dy
}
