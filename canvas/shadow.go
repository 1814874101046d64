package canvas

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/folderview/shape"
)

// maxShadowLayers bounds the number of fills used for one shadow.
const maxShadowLayers = 16

// Shadow describes a soft drop shadow.
type Shadow struct {
	// Color is the shadow color; its alpha is the peak shadow opacity.
	Color gg.RGBA
	// Radius is the blur radius. Zero draws a hard shadow.
	Radius float64
	// Offset displaces the shadow from the shape.
	Offset gg.Point
}

// Expander is implemented by shapes that can grow or shrink their outline
// by a distance while keeping its proportions, such as rounded rectangles
// whose corner radius grows with the outline.
type Expander interface {
	Expand(d float64) shape.Shape
}

// ShadowLayers returns the number of fills DrawShadow issues for s.
func ShadowLayers(s Shadow) int {
	if s.Radius <= 0 {
		return 1
	}
	return min(max(int(math.Ceil(s.Radius)), 2), maxShadowLayers)
}

// DrawShadow paints the shadow that shp, laid out in frame, would cast.
//
// The blur is approximated by stacking translucent copies of the outline,
// grown from +Radius down to -Radius: the shadow reaches half its opacity
// at the shape's edge and fades out Radius units outside it.
func DrawShadow(c Canvas, s Shadow, shp shape.Shape, frame gg.Rect, opacity float64) {
	if s.Color.A <= 0 || opacity <= 0 {
		return
	}
	frame = offsetRect(frame, s.Offset)

	n := ShadowLayers(s)
	if n == 1 {
		FillGeometry(c, shp.Geometry(frame), s.Color, opacity)
		return
	}

	// Per-layer alpha such that n stacked layers composite to Color.A.
	layerAlpha := 1 - math.Pow(1-s.Color.A, 1/float64(n))
	col := s.Color
	col.A = layerAlpha
	for i := range n {
		d := s.Radius * (1 - 2*(float64(i)+0.5)/float64(n))
		FillGeometry(c, expand(shp, frame, d), col, opacity)
	}
}

func expand(shp shape.Shape, frame gg.Rect, d float64) shape.Geometry {
	grown := shape.Inset(frame, -d)
	if e, ok := shp.(Expander); ok {
		return e.Expand(d).Geometry(grown)
	}
	return shp.Geometry(grown)
}

func offsetRect(r gg.Rect, off gg.Point) gg.Rect {
	return gg.Rect{Min: r.Min.Add(off), Max: r.Max.Add(off)}
}
