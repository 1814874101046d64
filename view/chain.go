package view

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
)

// Chain applies modifiers fluently. Each call wraps the current view, so
// the first modifier in a chain is the innermost.
type Chain struct {
	View
}

// Modify starts a Chain on v.
func Modify(v View) Chain {
	if c, ok := v.(Chain); ok {
		return c
	}
	return Chain{View: v}
}

// FirstBaseline returns the baseline of the wrapped view.
func (c Chain) FirstBaseline(size Size) (float64, bool) {
	return firstBaseline(c.View, size)
}

// Frame fixes the width, height or both; zero leaves a dimension to the
// content.
func (c Chain) Frame(width, height float64, align Direction) Chain {
	return Chain{Framed{Content: c.View, Width: width, Height: height, Alignment: align}}
}

// Padding insets the content by v on every edge.
func (c Chain) Padding(v float64) Chain {
	return c.PaddingInsets(UniformInsets(v))
}

// PaddingInsets insets the content by in.
func (c Chain) PaddingInsets(in Insets) Chain {
	return Chain{Padded{Content: c.View, Insets: in}}
}

// Background draws fill behind the content.
func (c Chain) Background(fill View) Chain {
	return Chain{Backgrounded{Content: c.View, Fill: fill}}
}

// BackgroundColor fills the content's frame with col behind it.
func (c Chain) BackgroundColor(col gg.RGBA) Chain {
	return c.Background(Fill(shape.Rectangle{}, col))
}

// Shadow casts a shadow of shp behind the content.
func (c Chain) Shadow(s canvas.Shadow, shp shape.Shape) Chain {
	return Chain{Shadowed{Content: c.View, Shadow: s, Shape: shp}}
}

// Opacity multiplies the content's opacity by alpha.
func (c Chain) Opacity(alpha float64) Chain {
	return Chain{Faded{Content: c.View, Alpha: alpha}}
}

// Rotation turns the content by angle radians about anchor.
func (c Chain) Rotation(angle float64, anchor Direction) Chain {
	return Chain{Rotated{Content: c.View, Angle: angle, Anchor: anchor}}
}

// Clip clips the content to shp.
func (c Chain) Clip(shp shape.Shape) Chain {
	return Chain{Clipped{Content: c.View, Shape: shp}}
}

// Clipped clips the content to its frame.
func (c Chain) Clipped() Chain {
	return c.Clip(shape.Rectangle{})
}
