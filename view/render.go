package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/folderview"
	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
)

// ErrEmptyView is returned when a view measures to zero width or height and
// there is nothing to render.
var ErrEmptyView = errors.New("view: empty view")

// RenderOption configures Snapshot and Record.
type RenderOption func(*renderOptions)

type renderOptions struct {
	padding    float64
	background gg.RGBA
	proposal   Size
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		background: gg.Transparent,
		proposal:   Size{W: Unbounded, H: Unbounded},
	}
}

// WithPadding surrounds the view with p units of background.
func WithPadding(p float64) RenderOption {
	return func(o *renderOptions) {
		o.padding = max(p, 0)
	}
}

// WithBackground fills the whole canvas with col before drawing.
func WithBackground(col gg.RGBA) RenderOption {
	return func(o *renderOptions) {
		o.background = col
	}
}

// WithProposal proposes a size to the root view instead of letting it take
// its ideal size.
func WithProposal(w, h float64) RenderOption {
	return func(o *renderOptions) {
		o.proposal = Size{W: w, H: h}
	}
}

// Layout is the placement of a root view on a canvas.
type Layout struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int
	// Frame is where the view is drawn.
	Frame gg.Rect
}

// Fit measures v and returns the canvas it should be rendered on.
func Fit(v View, opts ...RenderOption) (Layout, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return fit(v, o)
}

func fit(v View, o renderOptions) (Layout, error) {
	sz := v.Measure(o.proposal)
	if !(sz.W > 0 && sz.H > 0) || math.IsInf(sz.W, 0) || math.IsInf(sz.H, 0) {
		return Layout{}, fmt.Errorf("%w: measured %gx%g", ErrEmptyView, sz.W, sz.H)
	}
	return Layout{
		Width:  int(math.Ceil(sz.W + 2*o.padding)),
		Height: int(math.Ceil(sz.H + 2*o.padding)),
		Frame:  sz.Rect(gg.Pt(o.padding, o.padding)),
	}, nil
}

// Draw paints v into frame on c.
func Draw(c canvas.Canvas, v View, frame gg.Rect) {
	v.Draw(NewDrawer(c), frame)
}

func render(c canvas.Canvas, v View, l Layout, o renderOptions) {
	folderview.Logger().Debug("view: render",
		"width", l.Width, "height", l.Height, "frame", l.Frame)
	if o.background.A > 0 {
		bounds := shape.R(0, 0, float64(l.Width), float64(l.Height))
		canvas.FillGeometry(c, shape.Rectangle{}.Geometry(bounds), o.background, 1)
	}
	Draw(c, v, l.Frame)
}

// Snapshot rasterises v onto a new context sized to fit it.
func Snapshot(v View, opts ...RenderOption) (*gg.Context, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l, err := fit(v, o)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(l.Width, l.Height)
	render(canvas.FromContext(dc), v, l, o)
	return dc, nil
}

// Record captures the drawing commands of v.
func Record(v View, opts ...RenderOption) (*recording.Recording, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l, err := fit(v, o)
	if err != nil {
		return nil, err
	}
	rec := recording.NewRecorder(l.Width, l.Height)
	render(rec, v, l, o)
	r := rec.FinishRecording()
	folderview.Logger().Debug("view: recorded", "commands", len(r.Commands()))
	return r, nil
}

// Playback replays r onto gg's recording raster backend. That backend
// paints fills and strokes but neither clips nor renders text, so use
// Snapshot for faithful output; Playback is for checking recorded shapes.
func Playback(r *recording.Recording) (*raster.Backend, error) {
	b := raster.NewBackend()
	if err := r.Playback(b); err != nil {
		return nil, fmt.Errorf("view: playback: %w", err)
	}
	return b, nil
}
