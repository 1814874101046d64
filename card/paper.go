package card

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
	"github.com/gogpu/folderview/theme"
	"github.com/gogpu/folderview/view"
)

// Paper metrics.
const (
	DefaultPaperWidth = 86
	PaperHeight       = 120
	PaperRadius       = 10

	BarCount   = 5
	BarHeight  = 7
	BarSpacing = 6
	BarPadding = 12
	BarRadius  = 5

	barOpacity        = 0.05
	paperShadowRadius = 6
)

// PaperStack is a sheet of paper with a few ruled bars, drawn as a white
// rounded rectangle with a soft shadow. Its height is fixed; the bars keep
// their count and metrics at any width.
type PaperStack struct {
	// Width defaults to DefaultPaperWidth when zero.
	Width float64
	// Theme defaults to DefaultTheme when nil.
	Theme *theme.Theme
}

func (p PaperStack) width() float64 {
	if p.Width > 0 {
		return p.Width
	}
	return DefaultPaperWidth
}

func (p PaperStack) body() view.View {
	th := themeOr(p.Theme)

	bars := make([]view.View, BarCount)
	for i := range bars {
		bars[i] = view.Modify(view.Fill(shape.RoundedRect{Radius: BarRadius}, th.Ink)).
			Frame(0, BarHeight, view.Center).
			Opacity(barOpacity)
	}

	sheet := view.Modify(view.Fill(shape.RoundedRect{Radius: PaperRadius}, th.Paper)).
		Shadow(canvas.Shadow{Color: th.Shadow, Radius: paperShadowRadius}, shape.RoundedRect{Radius: PaperRadius})
	lines := view.Modify(view.VStack(view.Start, BarSpacing, bars...)).Padding(BarPadding)

	return view.Modify(view.Overlay(view.N, sheet, lines)).Frame(p.width(), PaperHeight, view.Center)
}

// Measure returns Width by PaperHeight regardless of proposed.
func (p PaperStack) Measure(proposed view.Size) view.Size {
	return p.body().Measure(proposed)
}

// Draw draws the sheet and its bars in frame.
func (p PaperStack) Draw(d *view.Drawer, frame gg.Rect) {
	p.body().Draw(d, frame)
}

// Bars returns the rectangles of the ruled bars when the paper fills frame.
func (p PaperStack) Bars(frame gg.Rect) []gg.Rect {
	bars := make([]gg.Rect, BarCount)
	w := max(frame.Width()-2*BarPadding, 0)
	for i := range bars {
		y := frame.Min.Y + BarPadding + float64(i)*(BarHeight+BarSpacing)
		bars[i] = shape.R(frame.Min.X+BarPadding, y, w, BarHeight)
	}
	return bars
}
