package view

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
)

// ShapeView paints a shape over its whole frame. It takes any size it is
// offered; unbounded dimensions collapse to zero.
type ShapeView struct {
	Shape shape.Shape
	Color gg.RGBA
	// LineWidth strokes the outline instead of filling it when positive.
	LineWidth float64
}

// Fill returns a view filling s with col.
func Fill(s shape.Shape, col gg.RGBA) ShapeView {
	return ShapeView{Shape: s, Color: col}
}

// Stroke returns a view outlining s with col.
func Stroke(s shape.Shape, col gg.RGBA, width float64) ShapeView {
	return ShapeView{Shape: s, Color: col, LineWidth: width}
}

// Measure returns the finite part of proposed.
func (v ShapeView) Measure(proposed Size) Size {
	return Size{W: finite(proposed.W), H: finite(proposed.H)}
}

// Draw fills or strokes the shape laid out in frame.
func (v ShapeView) Draw(d *Drawer, frame gg.Rect) {
	if v.Shape == nil {
		return
	}
	g := v.Shape.Geometry(frame)
	if v.LineWidth > 0 {
		canvas.StrokeGeometry(d.c, g, v.Color, v.LineWidth, d.opacity)
		return
	}
	canvas.FillGeometry(d.c, g, v.Color, d.opacity)
}

// Text is a single line of text. It never wraps or truncates.
type Text struct {
	Content string
	Face    text.Face
	Color   gg.RGBA
}

// Label returns a text view.
func Label(s string, face text.Face, col gg.RGBA) Text {
	return Text{Content: s, Face: face, Color: col}
}

// Measure returns the advance of the text by the face's line height.
func (v Text) Measure(Size) Size {
	if v.Face == nil {
		return Size{}
	}
	m := v.Face.Metrics()
	return Size{W: v.Face.Advance(v.Content), H: m.Ascent + m.Descent}
}

// FirstBaseline returns the ascent of the face.
func (v Text) FirstBaseline(Size) (float64, bool) {
	if v.Face == nil {
		return 0, false
	}
	return v.Face.Metrics().Ascent, true
}

// Draw draws the text with its baseline one ascent below the top of frame.
func (v Text) Draw(d *Drawer, frame gg.Rect) {
	if v.Face == nil || v.Content == "" {
		return
	}
	canvas.SetColor(d.c, v.Color, d.opacity)
	d.c.SetFont(v.Face)
	d.c.DrawString(v.Content, frame.Min.X, frame.Min.Y+v.Face.Metrics().Ascent)
}

// Ellipsis is the horizontal "more" glyph of a font of the given size:
// three dots centered in the x-height band above the baseline.
type Ellipsis struct {
	Size  float64
	Color gg.RGBA
}

// Dot metrics as fractions of the point size.
const (
	ellipsisDot     = 0.17
	ellipsisPitch   = 0.36
	ellipsisXHeight = 0.5
)

// Measure returns the width of the three dots by the x-height.
func (v Ellipsis) Measure(Size) Size {
	if v.Size <= 0 {
		return Size{}
	}
	return Size{W: 2*ellipsisPitch*v.Size + ellipsisDot*v.Size, H: ellipsisXHeight * v.Size}
}

// FirstBaseline returns the bottom of the x-height band.
func (v Ellipsis) FirstBaseline(size Size) (float64, bool) {
	return size.H, v.Size > 0
}

// Dots returns the frames of the three dots when v is drawn in frame.
func (v Ellipsis) Dots(frame gg.Rect) [3]gg.Rect {
	var dots [3]gg.Rect
	dot := ellipsisDot * v.Size
	y := frame.Min.Y + (frame.Height()-dot)/2
	x := frame.Min.X + (frame.Width()-v.Measure(Size{}).W)/2
	for i := range dots {
		dots[i] = shape.R(x+float64(i)*ellipsisPitch*v.Size, y, dot, dot)
	}
	return dots
}

// Draw fills the three dots.
func (v Ellipsis) Draw(d *Drawer, frame gg.Rect) {
	if v.Size <= 0 {
		return
	}
	for _, r := range v.Dots(frame) {
		canvas.FillGeometry(d.c, shape.Circle{}.Geometry(r), v.Color, d.opacity)
	}
}

// Spacer expands along the main axis of the enclosing stack. Outside a
// stack it is empty.
type Spacer struct {
	// MinLength is the smallest length the spacer shrinks to.
	MinLength float64
}

func (Spacer) Measure(Size) Size     { return Size{} }
func (Spacer) Draw(*Drawer, gg.Rect) {}

// Empty draws nothing and takes no space.
type Empty struct{}

func (Empty) Measure(Size) Size     { return Size{} }
func (Empty) Draw(*Drawer, gg.Rect) {}
