package view

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
)

// Framed gives Content a fixed width, height or both. A zero dimension is
// left to Content. Content smaller or larger than the frame is placed by
// Alignment and may overflow it.
type Framed struct {
	Content       View
	Width, Height float64
	Alignment     Direction
}

func (f Framed) proposal(proposed Size) Size {
	if f.Width > 0 {
		proposed.W = f.Width
	}
	if f.Height > 0 {
		proposed.H = f.Height
	}
	return proposed
}

// Measure returns the fixed dimensions, taking the others from Content.
func (f Framed) Measure(proposed Size) Size {
	p := f.proposal(proposed)
	sz := Size{W: f.Width, H: f.Height}
	if f.Width > 0 && f.Height > 0 {
		return sz
	}
	inner := f.Content.Measure(p)
	if f.Width <= 0 {
		sz.W = inner.W
	}
	if f.Height <= 0 {
		sz.H = inner.H
	}
	return sz
}

func (f Framed) content(frame gg.Rect) gg.Rect {
	return f.Alignment.Place(f.Content.Measure(f.proposal(SizeOf(frame))), frame)
}

// Draw places Content in frame by Alignment.
func (f Framed) Draw(d *Drawer, frame gg.Rect) {
	f.Content.Draw(d, f.content(frame))
}

// FirstBaseline returns Content's baseline offset by its placement.
func (f Framed) FirstBaseline(size Size) (float64, bool) {
	inner := f.content(size.Rect(gg.Pt(0, 0)))
	b, ok := firstBaseline(f.Content, SizeOf(inner))
	return inner.Min.Y + b, ok
}

// Insets are distances from the edges of a frame.
type Insets struct {
	Top, Leading, Bottom, Trailing float64
}

// UniformInsets returns Insets of v on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// Padded surrounds Content with empty space.
type Padded struct {
	Content View
	Insets  Insets
}

// Measure returns Content's size for the inset proposal plus the insets.
func (p Padded) Measure(proposed Size) Size {
	h := p.Insets.Leading + p.Insets.Trailing
	v := p.Insets.Top + p.Insets.Bottom
	inner := p.Content.Measure(Size{W: max(proposed.W-h, 0), H: max(proposed.H-v, 0)})
	return Size{W: inner.W + h, H: inner.H + v}
}

func (p Padded) inset(frame gg.Rect) gg.Rect {
	r := gg.Rect{
		Min: gg.Pt(frame.Min.X+p.Insets.Leading, frame.Min.Y+p.Insets.Top),
		Max: gg.Pt(frame.Max.X-p.Insets.Trailing, frame.Max.Y-p.Insets.Bottom),
	}
	r.Max.X = max(r.Max.X, r.Min.X)
	r.Max.Y = max(r.Max.Y, r.Min.Y)
	return r
}

// Draw draws Content in frame shrunk by the insets.
func (p Padded) Draw(d *Drawer, frame gg.Rect) {
	p.Content.Draw(d, p.inset(frame))
}

// FirstBaseline returns Content's baseline below the top inset.
func (p Padded) FirstBaseline(size Size) (float64, bool) {
	b, ok := firstBaseline(p.Content, SizeOf(p.inset(size.Rect(gg.Pt(0, 0)))))
	return p.Insets.Top + b, ok
}

// Backgrounded draws Fill behind Content, in Content's frame.
type Backgrounded struct {
	Content View
	Fill    View
}

// Measure returns the size of Content.
func (b Backgrounded) Measure(proposed Size) Size {
	return b.Content.Measure(proposed)
}

// Draw draws Fill, then Content, both in frame.
func (b Backgrounded) Draw(d *Drawer, frame gg.Rect) {
	b.Fill.Draw(d, frame)
	b.Content.Draw(d, frame)
}

// FirstBaseline returns the baseline of Content.
func (b Backgrounded) FirstBaseline(size Size) (float64, bool) {
	return firstBaseline(b.Content, size)
}

// Shadowed casts a shadow of Shape, laid out in Content's frame, behind
// Content. A nil Shape casts a rectangular shadow.
type Shadowed struct {
	Content View
	Shadow  canvas.Shadow
	Shape   shape.Shape
}

// Measure returns the size of Content.
func (s Shadowed) Measure(proposed Size) Size {
	return s.Content.Measure(proposed)
}

// Draw draws the shadow, then Content.
func (s Shadowed) Draw(d *Drawer, frame gg.Rect) {
	shp := s.Shape
	if shp == nil {
		shp = shape.Rectangle{}
	}
	canvas.DrawShadow(d.c, s.Shadow, shp, frame, d.opacity)
	s.Content.Draw(d, frame)
}

// FirstBaseline returns the baseline of Content.
func (s Shadowed) FirstBaseline(size Size) (float64, bool) {
	return firstBaseline(s.Content, size)
}

// Faded draws Content with its opacity multiplied by Alpha. Overlapping
// parts of Content are faded individually, not as a group.
type Faded struct {
	Content View
	Alpha   float64
}

// Measure returns the size of Content.
func (f Faded) Measure(proposed Size) Size {
	return f.Content.Measure(proposed)
}

// Draw draws Content at reduced opacity. Nothing is drawn when Alpha is
// zero or negative; values above 1 are clamped.
func (f Faded) Draw(d *Drawer, frame gg.Rect) {
	if f.Alpha <= 0 {
		return
	}
	d.withOpacity(min(f.Alpha, 1), func() {
		f.Content.Draw(d, frame)
	})
}

// FirstBaseline returns the baseline of Content.
func (f Faded) FirstBaseline(size Size) (float64, bool) {
	return firstBaseline(f.Content, size)
}

// Rotated turns Content by Angle radians about the point of its frame
// designated by Anchor. Positive angles turn clockwise on screen. Rotation
// affects drawing only; layout uses the unrotated frame.
type Rotated struct {
	Content View
	Angle   float64
	Anchor  Direction
}

// Measure returns the unrotated size of Content.
func (r Rotated) Measure(proposed Size) Size {
	return r.Content.Measure(proposed)
}

// Draw draws Content rotated about the anchor point. The transform is
// restored afterwards.
func (r Rotated) Draw(d *Drawer, frame gg.Rect) {
	if r.Angle == 0 {
		r.Content.Draw(d, frame)
		return
	}
	d.isolated(func() {
		p := r.Anchor.Point(frame)
		d.c.RotateAbout(r.Angle, p.X, p.Y)
		r.Content.Draw(d, frame)
	})
}

// FirstBaseline returns the unrotated baseline of Content.
func (r Rotated) FirstBaseline(size Size) (float64, bool) {
	return firstBaseline(r.Content, size)
}

// validator is implemented by shapes that can check their parameters
// against a frame, such as shape.Folder.
type validator interface {
	Validate(r gg.Rect) error
}

// Clipped restricts Content's drawing to Shape laid out in Content's
// frame. A nil Shape clips to the frame itself.
type Clipped struct {
	Content View
	Shape   shape.Shape
}

// Measure returns the size of Content.
func (c Clipped) Measure(proposed Size) Size {
	return c.Content.Measure(proposed)
}

// Draw draws Content inside the clip and restores the previous clip.
// Shapes with a Validate method that rejects frame are still used, with
// a warning logged.
func (c Clipped) Draw(d *Drawer, frame gg.Rect) {
	shp := c.Shape
	if shp == nil {
		shp = shape.Rectangle{}
	}
	if v, ok := shp.(validator); ok {
		if err := v.Validate(frame); err != nil {
			d.log.Warn("view: clipping to malformed shape", "err", err, "frame", frame)
		}
	}
	d.isolated(func() {
		canvas.ClipGeometry(d.c, shp.Geometry(frame))
		c.Content.Draw(d, frame)
	})
}

// FirstBaseline returns the baseline of Content.
func (c Clipped) FirstBaseline(size Size) (float64, bool) {
	return firstBaseline(c.Content, size)
}
