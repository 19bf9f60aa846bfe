package controllable

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style controls how a manipulator's chrome is drawn.
type Style struct {
	Border      color.Color
	BorderWidth float32
	Handle      color.Color
	Knob        color.Color
	ActiveKnob  color.Color
}

// DefaultStyle matches a light grey 1px border with grey handles.
var DefaultStyle = Style{
	Border:      color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	BorderWidth: 1,
	Handle:      color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	Knob:        color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	ActiveKnob:  color.RGBA{0x4a, 0x90, 0xe2, 0xff},
}

// Draw renders every hosted manipulator in order.
func (s *Surface) Draw(screen *ebiten.Image) {
	for _, m := range s.manipulators {
		m.Draw(screen, DefaultStyle)
	}
}

// Draw renders the box outline, the rotate knob and the resize handles.
// Content inside the box is the host's responsibility.
func (m *Manipulator) Draw(dst *ebiten.Image, st Style) {
	w, h := m.geom.Size()
	f := newBoxFrame(m.originX, m.originY, m.geom)

	corners := [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
	var pts [4][2]float32
	for i, c := range corners {
		x, y := f.toClient(c[0], c[1])
		pts[i] = [2]float32{float32(x), float32(y)}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], st.BorderWidth, st.Border, true)
	}

	knob := st.Knob
	if m.Rotating() {
		knob = st.ActiveKnob
	}
	kc := m.rotate.HitShape().(HitCircle)
	kx, ky := f.toClient(kc.CenterX, kc.CenterY)
	vector.StrokeCircle(dst, float32(kx), float32(ky), rotateHandleSize/2-1, 2, knob, true)

	for i, el := range m.handles {
		c := el.HitShape().(HitCircle)
		x, y := f.toClient(c.CenterX, c.CenterY)
		clr := st.Handle
		if m.Resizing() == i+1 {
			clr = st.ActiveKnob
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), resizeHandleSize/2, clr, true)
	}
}
