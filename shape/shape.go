package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// Shape produces an outline for a bounding rectangle.
type Shape interface {
	Geometry(r gg.Rect) Geometry
}

// Func adapts an ordinary function to the Shape interface.
type Func func(r gg.Rect) Geometry

// Geometry calls f(r).
func (f Func) Geometry(r gg.Rect) Geometry {
	return f(r)
}

// R returns the rectangle with origin (x, y) and size w×h.
func R(x, y, w, h float64) gg.Rect {
	return gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}
}

// Rectangle fills its bounding rectangle.
type Rectangle struct{}

// Geometry implements Shape.
func (Rectangle) Geometry(r gg.Rect) Geometry {
	var g Geometry
	g.MoveTo(r.Min)
	g.LineTo(gg.Pt(r.Max.X, r.Min.Y))
	g.LineTo(r.Max)
	g.LineTo(gg.Pt(r.Min.X, r.Max.Y))
	g.Close()
	return g
}

// RoundedRect is a rectangle whose four corners are circular arcs.
// The radius is clamped to half of the smaller side.
type RoundedRect struct {
	Radius float64
}

// Geometry implements Shape.
func (s RoundedRect) Geometry(r gg.Rect) Geometry {
	rad := math.Max(0, math.Min(s.Radius, math.Min(r.Width(), r.Height())/2))

	var g Geometry
	g.MoveTo(gg.Pt(r.Min.X+rad, r.Min.Y))
	g.LineTo(gg.Pt(r.Max.X-rad, r.Min.Y))
	g.ArcTo(gg.Pt(r.Max.X-rad, r.Min.Y+rad), rad, -math.Pi/2, math.Pi/2)
	g.LineTo(gg.Pt(r.Max.X, r.Max.Y-rad))
	g.ArcTo(gg.Pt(r.Max.X-rad, r.Max.Y-rad), rad, 0, math.Pi/2)
	g.LineTo(gg.Pt(r.Min.X+rad, r.Max.Y))
	g.ArcTo(gg.Pt(r.Min.X+rad, r.Max.Y-rad), rad, math.Pi/2, math.Pi/2)
	g.LineTo(gg.Pt(r.Min.X, r.Min.Y+rad))
	g.ArcTo(gg.Pt(r.Min.X+rad, r.Min.Y+rad), rad, math.Pi, math.Pi/2)
	g.Close()
	return g
}

// Expand returns the rounded rectangle whose outline lies d units outside
// this one's, as used for soft shadows.
func (s RoundedRect) Expand(d float64) Shape {
	return RoundedRect{Radius: math.Max(0, s.Radius+d)}
}

// Circle is the largest circle centred in its bounding rectangle.
type Circle struct{}

// Geometry implements Shape.
func (Circle) Geometry(r gg.Rect) Geometry {
	rad := math.Min(r.Width(), r.Height()) / 2
	center := gg.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)

	var g Geometry
	g.ArcTo(center, rad, 0, 2*math.Pi)
	g.Close()
	return g
}

// Inset shrinks r by d on every side. The result never has a negative size.
func Inset(r gg.Rect, d float64) gg.Rect {
	out := gg.Rect{
		Min: gg.Pt(r.Min.X+d, r.Min.Y+d),
		Max: gg.Pt(r.Max.X-d, r.Max.Y-d),
	}
	if out.Max.X < out.Min.X {
		mid := (r.Min.X + r.Max.X) / 2
		out.Min.X, out.Max.X = mid, mid
	}
	if out.Max.Y < out.Min.Y {
		mid := (r.Min.Y + r.Max.Y) / 2
		out.Min.Y, out.Max.Y = mid, mid
	}
	return out
}
