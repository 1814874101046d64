package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// maxArcStep is the largest sweep approximated by a single cubic curve.
const maxArcStep = math.Pi / 2

// Start returns the first point of the arc.
func (a ArcTo) Start() gg.Point {
	return a.pointAt(a.StartAngle)
}

// End returns the last point of the arc.
func (a ArcTo) End() gg.Point {
	return a.pointAt(a.StartAngle + a.Sweep)
}

// EndAngle returns StartAngle + Sweep.
func (a ArcTo) EndAngle() float64 {
	return a.StartAngle + a.Sweep
}

// StartTangent returns the unit direction of travel at the start of the arc.
func (a ArcTo) StartTangent() gg.Point {
	return a.tangentAt(a.StartAngle)
}

// EndTangent returns the unit direction of travel at the end of the arc.
func (a ArcTo) EndTangent() gg.Point {
	return a.tangentAt(a.EndAngle())
}

// Cubics approximates the arc with cubic Bezier curves, one per quarter turn
// or less. The first curve starts at Start and the last ends at End.
func (a ArcTo) Cubics() []CubicTo {
	if a.Radius <= 0 || a.Sweep == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(a.Sweep)/maxArcStep - epsilon))
	n = max(n, 1)
	step := a.Sweep / float64(n)
	// Control arm length for a circular segment of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4) * a.Radius

	out := make([]CubicTo, 0, n)
	for i := range n {
		a1 := a.StartAngle + float64(i)*step
		a2 := a1 + step
		p0 := a.pointAt(a1)
		p3 := a.pointAt(a2)
		out = append(out, CubicTo{
			Control1: gg.Pt(p0.X-k*math.Sin(a1), p0.Y+k*math.Cos(a1)),
			Control2: gg.Pt(p3.X+k*math.Sin(a2), p3.Y-k*math.Cos(a2)),
			Point:    p3,
		})
	}
	return out
}

func (a ArcTo) pointAt(angle float64) gg.Point {
	return gg.Pt(a.Center.X+a.Radius*math.Cos(angle), a.Center.Y+a.Radius*math.Sin(angle))
}

func (a ArcTo) tangentAt(angle float64) gg.Point {
	t := gg.Pt(-math.Sin(angle), math.Cos(angle))
	if a.Sweep < 0 {
		return gg.Pt(-t.X, -t.Y)
	}
	return t
}
