package shape

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// SVG returns the geometry as SVG path data (the "d" attribute).
// Arcs are written as elliptical arc commands, split in two when they
// cover a full turn so that start and end points differ.
func (g Geometry) SVG() string {
	var b strings.Builder
	for _, seg := range g.segments {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch s := seg.(type) {
		case MoveTo:
			b.WriteString("M")
			writePoint(&b, s.Point)
		case LineTo:
			b.WriteString("L")
			writePoint(&b, s.Point)
		case CubicTo:
			b.WriteString("C")
			writePoint(&b, s.Control1)
			b.WriteByte(' ')
			writePoint(&b, s.Control2)
			b.WriteByte(' ')
			writePoint(&b, s.Point)
		case ArcTo:
			writeArc(&b, s)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writeArc(b *strings.Builder, a ArcTo) {
	parts := []ArcTo{a}
	if math.Abs(a.Sweep) >= 2*math.Pi-epsilon {
		half := a.Sweep / 2
		parts = []ArcTo{
			{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle, Sweep: half},
			{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle + half, Sweep: half},
		}
	}
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		large, sweep := "0", "0"
		if math.Abs(p.Sweep) > math.Pi {
			large = "1"
		}
		if p.Sweep > 0 {
			sweep = "1"
		}
		r := formatFloat(p.Radius)
		b.WriteString("A" + r + " " + r + " 0 " + large + " " + sweep + " ")
		writePoint(b, p.End())
	}
}

func writePoint(b *strings.Builder, p gg.Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y))
}

// formatFloat prints v with at most three decimals and no trailing zeros.
func formatFloat(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalise negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
