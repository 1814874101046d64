// Package canvas defines the drawing surface folderview renders onto.
//
// [Canvas] is the subset of the gg drawing API the components need. A
// [recording.Recorder] satisfies it directly; a raster [gg.Context] is
// wrapped with [FromContext]. All shapes are emitted as explicit path
// segments so that the current transform applies to every point.
//
// [recording.Recorder]: https://pkg.go.dev/github.com/gogpu/gg/recording#Recorder
// [gg.Context]: https://pkg.go.dev/github.com/gogpu/gg#Context
package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/folderview"
	"github.com/gogpu/folderview/shape"
)

// Canvas is an immediate-mode 2D drawing surface.
type Canvas interface {
	// Push saves the transform and clip; Pop restores them.
	Push()
	Pop()

	// RotateAbout rotates the coordinate system by angle radians around (x, y).
	RotateAbout(angle, x, y float64)

	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	// Fill, Stroke and Clip consume the current path.
	Fill()
	Stroke()
	Clip()

	// SetFont selects the face used by DrawString.
	SetFont(face text.Face)
	// DrawString draws s with its baseline starting at (x, y). Text is
	// positioned in untransformed coordinates on raster targets.
	DrawString(s string, x, y float64)
}

var _ Canvas = (*recording.Recorder)(nil)

// contextCanvas adapts *gg.Context, whose Fill and Stroke return errors.
type contextCanvas struct {
	*gg.Context
}

// FromContext wraps a raster gg context as a Canvas. Rasterisation errors
// are logged at warn level and do not stop the render.
func FromContext(dc *gg.Context) Canvas {
	return contextCanvas{Context: dc}
}

func (c contextCanvas) Fill() {
	if err := c.Context.Fill(); err != nil {
		folderview.Logger().Warn("canvas: fill failed", "err", err)
	}
}

func (c contextCanvas) Stroke() {
	if err := c.Context.Stroke(); err != nil {
		folderview.Logger().Warn("canvas: stroke failed", "err", err)
	}
}

// SetColor sets col as the current color with its alpha scaled by opacity.
func SetColor(c Canvas, col gg.RGBA, opacity float64) {
	c.SetRGBA(col.R, col.G, col.B, col.A*clamp01(opacity))
}

// FillGeometry fills g with col.
func FillGeometry(c Canvas, g shape.Geometry, col gg.RGBA, opacity float64) {
	if g.IsEmpty() {
		return
	}
	SetColor(c, col, opacity)
	g.Emit(c)
	c.Fill()
}

// StrokeGeometry strokes the outline of g with col.
func StrokeGeometry(c Canvas, g shape.Geometry, col gg.RGBA, width, opacity float64) {
	if g.IsEmpty() {
		return
	}
	SetColor(c, col, opacity)
	c.SetLineWidth(width)
	g.Emit(c)
	c.Stroke()
}

// ClipGeometry intersects the clip region with g. The clip lasts until the
// enclosing Pop.
func ClipGeometry(c Canvas, g shape.Geometry) {
	if g.IsEmpty() {
		return
	}
	g.Emit(c)
	c.Clip()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
