package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// epsilon is the distance below which two points are considered equal.
const epsilon = 1e-9

// Segment is a single element of a Geometry.
// This is a sealed interface; only types in this package implement it.
type Segment interface {
	isSegment()
}

// MoveTo starts a new contour at Point.
type MoveTo struct {
	Point gg.Point
}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point gg.Point
}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 gg.Point
	Control2 gg.Point
	Point    gg.Point
}

// ArcTo draws a circular arc around Center.
// StartAngle and Sweep are in radians; a positive sweep turns clockwise on
// screen (towards increasing angles in a Y-down coordinate system).
type ArcTo struct {
	Center     gg.Point
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// Close closes the current contour back to its starting point.
type Close struct{}

func (MoveTo) isSegment()  {}
func (LineTo) isSegment()  {}
func (CubicTo) isSegment() {}
func (ArcTo) isSegment()   {}
func (Close) isSegment()   {}

// PathSink receives path construction calls.
// Both gg.Context and recording.Recorder satisfy it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Geometry is an ordered list of segments describing one or more contours.
//
// The construction methods drop degenerate segments: zero-length lines,
// curves that end where they start, and arcs without radius or sweep.
// The zero value is an empty geometry ready to use.
type Geometry struct {
	segments []Segment
	start    gg.Point
	current  gg.Point
	open     bool
}

// MoveTo starts a new contour at p.
func (g *Geometry) MoveTo(p gg.Point) {
	g.segments = append(g.segments, MoveTo{Point: p})
	g.start = p
	g.current = p
	g.open = true
}

// LineTo adds a straight line from the current point to p.
// Lines of zero length are dropped.
func (g *Geometry) LineTo(p gg.Point) {
	if !g.open {
		g.MoveTo(p)
		return
	}
	if near(g.current, p) {
		return
	}
	g.segments = append(g.segments, LineTo{Point: p})
	g.current = p
}

// CubicTo adds a cubic Bezier curve from the current point to p.
// A curve that starts and ends at the same point is dropped.
func (g *Geometry) CubicTo(c1, c2, p gg.Point) {
	if !g.open {
		g.MoveTo(p)
		return
	}
	if near(g.current, p) {
		return
	}
	g.segments = append(g.segments, CubicTo{Control1: c1, Control2: c2, Point: p})
	g.current = p
}

// ArcTo adds a circular arc. If the arc does not start at the current point,
// a line to its start is inserted first. Arcs with a zero radius or sweep
// are dropped.
func (g *Geometry) ArcTo(center gg.Point, radius, startAngle, sweep float64) {
	if radius <= 0 || sweep == 0 {
		return
	}
	arc := ArcTo{Center: center, Radius: radius, StartAngle: startAngle, Sweep: sweep}
	if !g.open {
		g.MoveTo(arc.Start())
	} else {
		g.LineTo(arc.Start())
	}
	g.segments = append(g.segments, arc)
	g.current = arc.End()
}

// Close closes the current contour. A final line that already ends at the
// contour start is replaced by the close.
func (g *Geometry) Close() {
	if !g.open {
		return
	}
	if n := len(g.segments); n > 0 {
		if l, ok := g.segments[n-1].(LineTo); ok && near(l.Point, g.start) {
			g.segments = g.segments[:n-1]
		}
	}
	g.segments = append(g.segments, Close{})
	g.current = g.start
	g.open = false
}

// Segments returns the segments of the geometry.
func (g Geometry) Segments() []Segment {
	return g.segments
}

// IsEmpty reports whether the geometry has no segments.
func (g Geometry) IsEmpty() bool {
	return len(g.segments) == 0
}

// IsClosed reports whether every contour of the geometry is closed.
func (g Geometry) IsClosed() bool {
	return len(g.segments) > 0 && !g.open
}

// Vertices returns the on-curve points of the geometry in drawing order:
// the start of each contour, the end point of every segment, and the
// contour start again for each Close.
func (g Geometry) Vertices() []gg.Point {
	pts := make([]gg.Point, 0, len(g.segments)+1)
	var start gg.Point
	for _, seg := range g.segments {
		switch s := seg.(type) {
		case MoveTo:
			start = s.Point
			pts = append(pts, s.Point)
		case LineTo:
			pts = append(pts, s.Point)
		case CubicTo:
			pts = append(pts, s.Point)
		case ArcTo:
			pts = append(pts, s.End())
		case Close:
			pts = append(pts, start)
		}
	}
	return pts
}

// Arcs returns the arc segments of the geometry.
func (g Geometry) Arcs() []ArcTo {
	var arcs []ArcTo
	for _, seg := range g.segments {
		if a, ok := seg.(ArcTo); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// Emit replays the geometry onto sink. Arcs are converted to cubic curves.
func (g Geometry) Emit(sink PathSink) {
	for _, seg := range g.segments {
		switch s := seg.(type) {
		case MoveTo:
			sink.MoveTo(s.Point.X, s.Point.Y)
		case LineTo:
			sink.LineTo(s.Point.X, s.Point.Y)
		case CubicTo:
			sink.CubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case ArcTo:
			for _, c := range s.Cubics() {
				sink.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
			}
		case Close:
			sink.ClosePath()
		}
	}
}

// Path converts the geometry to a gg path.
func (g Geometry) Path() *gg.Path {
	p := gg.NewPath()
	g.Emit(pathSink{p})
	return p
}

// Bounds returns the tight bounding box of the geometry.
func (g Geometry) Bounds() gg.Rect {
	return g.Path().BoundingBox()
}

// Contains reports whether pt lies inside the geometry (non-zero rule).
func (g Geometry) Contains(pt gg.Point) bool {
	return g.Path().Contains(pt)
}

// pathSink adapts *gg.Path, whose close method is named Close, to PathSink.
type pathSink struct {
	p *gg.Path
}

func (s pathSink) MoveTo(x, y float64) { s.p.MoveTo(x, y) }
func (s pathSink) LineTo(x, y float64) { s.p.LineTo(x, y) }
func (s pathSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.p.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (s pathSink) ClosePath() { s.p.Close() }

func near(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}
