package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// Default folder tab metrics.
const (
	DefaultTabWidth  = 50
	DefaultTabHeight = 15
	DefaultTabStartX = 80
)

// tabControlDivisor sets how far the tab curve's control points sit from
// its end points, as a fraction of the tab width.
const tabControlDivisor = 2.5

// Folder is the silhouette of a paper folder: the top edge steps down by
// TabHeight through an S-shaped curve, and the top-right corner is rounded
// with a circular arc of CornerRadius.
//
// Folder is a value type; its zero value is a plain rectangle without tab.
type Folder struct {
	// CornerRadius is the radius of the top-right corner.
	CornerRadius float64
	// TabWidth is the horizontal span of the height drop.
	TabWidth float64
	// TabHeight is the magnitude of the height drop.
	TabHeight float64
	// TabStartX is where the height drop starts, relative to the left edge.
	TabStartX float64
}

// NewFolder returns a Folder with the given corner radius and the default
// tab metrics.
func NewFolder(cornerRadius float64) Folder {
	return Folder{
		CornerRadius: cornerRadius,
		TabWidth:     DefaultTabWidth,
		TabHeight:    DefaultTabHeight,
		TabStartX:    DefaultTabStartX,
	}
}

// TabControlPointOffset is the horizontal distance between each end of the
// tab curve and its nearest control point.
func (f Folder) TabControlPointOffset() float64 {
	return f.TabWidth / tabControlDivisor
}

// TabEndX is where the height drop ends, relative to the left edge.
func (f Folder) TabEndX() float64 {
	return f.TabStartX + f.TabWidth
}

// Geometry implements Shape. It never fails: parameters outside the valid
// range produce a malformed contour. Use Validate to check them first.
func (f Folder) Geometry(r gg.Rect) Geometry {
	return FolderOutline(r, f)
}

// FolderOutline traces the folder silhouette of f inside r, clockwise from
// the top-left corner.
func FolderOutline(r gg.Rect, f Folder) Geometry {
	off := f.TabControlPointOffset()
	top := r.Min.Y
	shelf := r.Min.Y + f.TabHeight

	var g Geometry
	g.MoveTo(r.Min)
	g.LineTo(gg.Pt(r.Min.X+f.TabStartX, top))
	g.CubicTo(
		gg.Pt(r.Min.X+f.TabStartX+off, top),
		gg.Pt(r.Min.X+f.TabEndX()-off, shelf),
		gg.Pt(r.Min.X+f.TabEndX(), shelf),
	)
	g.LineTo(gg.Pt(r.Max.X-f.CornerRadius, shelf))
	g.ArcTo(gg.Pt(r.Max.X-f.CornerRadius, shelf+f.CornerRadius), f.CornerRadius, -math.Pi/2, math.Pi/2)
	g.LineTo(r.Max)
	g.LineTo(gg.Pt(r.Min.X, r.Max.Y))
	g.Close()
	return g
}

// Validate reports whether f draws a simple closed contour inside r.
// It returns a *ParameterError wrapping ErrInvalidParameters for the first
// violated constraint.
func (f Folder) Validate(r gg.Rect) error {
	w, h := r.Width(), r.Height()
	params := []struct {
		name  string
		value float64
	}{
		{"CornerRadius", f.CornerRadius},
		{"TabWidth", f.TabWidth},
		{"TabHeight", f.TabHeight},
		{"TabStartX", f.TabStartX},
	}
	for _, p := range params {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value < 0 {
			return &ParameterError{Field: p.name, Value: p.value, Limit: 0, Reason: "must be a finite non-negative number"}
		}
	}

	switch {
	case f.TabEndX() > w:
		return &ParameterError{Field: "TabStartX+TabWidth", Value: f.TabEndX(), Limit: w, Reason: "exceeds the width"}
	case f.CornerRadius > math.Min(w, h)/2:
		return &ParameterError{Field: "CornerRadius", Value: f.CornerRadius, Limit: math.Min(w, h) / 2, Reason: "exceeds half the smaller side"}
	case f.CornerRadius > h-f.TabHeight:
		return &ParameterError{Field: "CornerRadius", Value: f.CornerRadius, Limit: h - f.TabHeight, Reason: "exceeds the height below the tab"}
	case f.TabEndX() > w-f.CornerRadius:
		return &ParameterError{Field: "TabStartX+TabWidth", Value: f.TabEndX(), Limit: w - f.CornerRadius, Reason: "overlaps the rounded corner"}
	}
	return nil
}
