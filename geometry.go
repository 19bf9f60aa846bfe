package controllable

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Geometry is the on-screen state of the box. Every field carries a unit
// suffix. Width and Height are not clamped and may become negative; Rotate
// accumulates freely past 360deg.
type Geometry struct {
	Width  CSSValue
	Height CSSValue
	Left   CSSValue
	Top    CSSValue
	Rotate CSSValue
}

// newGeometry seeds a Geometry from the initial values of cfg.
func newGeometry(cfg Config) Geometry {
	return Geometry{
		Width:  NormalizeCSSValue(cfg.InitialWidth),
		Height: NormalizeCSSValue(cfg.InitialHeight),
		Left:   "0px",
		Top:    "0px",
		Rotate: CSSValue(NormalizeAngle(cfg.InitialRotate)),
	}
}

// Size returns the numeric width and height.
func (g Geometry) Size() (w, h float64) {
	return g.Width.Float(), g.Height.Float()
}

// Offset returns the numeric left and top offsets.
func (g Geometry) Offset() (left, top float64) {
	return g.Left.Float(), g.Top.Float()
}

// Degrees returns the rotation in degrees.
func (g Geometry) Degrees() float64 {
	return ParseAngle(string(g.Rotate))
}

// addPx returns v shifted by d, formatted in pixels.
func addPx(v CSSValue, d float64) CSSValue {
	return CSSValue(FormatLength(v.Float()+d, "px"))
}

// boxBounds returns the axis-aligned bounding rectangle of the rotated box
// whose container sits at origin. The box rotates about its own center.
func boxBounds(origin r2.Vec, g Geometry) Rect {
	w, h := g.Size()
	left, top := g.Offset()
	x, y := origin.X+left, origin.Y+top

	center := r2.Vec{X: x + w/2, Y: y + h/2}
	rot := r2.NewRotation(g.Degrees()*math.Pi/180, center)
	corners := [4]r2.Vec{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := rot.Rotate(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// bearing returns the rotation in degrees that points the top of the box
// from center toward p: straight up is 0, right is 90.
func bearing(center, p r2.Vec) float64 {
	d := r2.Sub(center, p)
	return math.Atan2(d.Y, d.X)*180/math.Pi - 90
}
