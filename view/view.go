// Package view composes shapes and text into declarative view trees.
//
// A [View] answers two questions: how large it wants to be for a proposed
// size ([View.Measure]) and how to paint itself into a frame chosen by its
// parent ([View.Draw]). Containers ([VStack], [HStack], [ZStack]) and
// modifiers ([Framed], [Padded], [Clipped], ...) are ordinary views that
// wrap other views. [Modify] starts a fluent [Chain]:
//
//	v := view.Modify(view.Fill(shape.RoundedRect{Radius: 10}, gg.White)).
//		Frame(86, 120, view.Center).
//		Shadow(canvas.Shadow{Color: gg.RGBA2(0, 0, 0, 0.25), Radius: 6}, shape.RoundedRect{Radius: 10})
//
// Views are immutable values and may be drawn any number of times. Layout is
// recomputed on every draw.
package view

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/folderview"
	"github.com/gogpu/folderview/canvas"
)

// Unbounded is a proposed dimension with no limit.
var Unbounded = math.Inf(1)

// Size is a width and height in drawing units.
type Size struct {
	W, H float64
}

// Rect returns the frame of size s placed at origin.
func (s Size) Rect(origin gg.Point) gg.Rect {
	return gg.Rect{Min: origin, Max: gg.Pt(origin.X+s.W, origin.Y+s.H)}
}

// SizeOf returns the size of r.
func SizeOf(r gg.Rect) Size {
	return Size{W: r.Width(), H: r.Height()}
}

// View is an element of a view tree.
type View interface {
	// Measure returns the size the view wants given the proposed size.
	// Either dimension of proposed may be Unbounded.
	Measure(proposed Size) Size
	// Draw paints the view into frame.
	Draw(d *Drawer, frame gg.Rect)
}

// Baseliner is implemented by views that may have a text baseline.
type Baseliner interface {
	// FirstBaseline returns the distance from the top of a view of the
	// given size to its first text baseline, and whether it has one.
	FirstBaseline(size Size) (float64, bool)
}

// firstBaseline reports the first baseline of v laid out at size. Views
// without one use their bottom edge.
func firstBaseline(v View, size Size) (float64, bool) {
	if b, ok := v.(Baseliner); ok {
		if y, ok := b.FirstBaseline(size); ok {
			return y, true
		}
	}
	return size.H, false
}

// Drawer carries the drawing state down a view tree.
type Drawer struct {
	c       canvas.Canvas
	opacity float64
	log     *slog.Logger
}

// NewDrawer returns a Drawer painting onto c at full opacity.
func NewDrawer(c canvas.Canvas) *Drawer {
	return &Drawer{c: c, opacity: 1, log: folderview.Logger()}
}

// Canvas returns the surface being drawn on.
func (d *Drawer) Canvas() canvas.Canvas { return d.c }

// Opacity returns the accumulated opacity of the enclosing modifiers.
func (d *Drawer) Opacity() float64 { return d.opacity }

// withOpacity runs fn with the opacity multiplied by alpha.
func (d *Drawer) withOpacity(alpha float64, fn func()) {
	saved := d.opacity
	d.opacity *= alpha
	defer func() { d.opacity = saved }()
	fn()
}

// isolated runs fn between Push and Pop.
func (d *Drawer) isolated(fn func()) {
	d.c.Push()
	defer d.c.Pop()
	fn()
}

// Direction is the placement of a view inside a larger space.
type Direction uint8

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Unit returns the position of d as fractions of a width and height, with
// (0, 0) the top-left corner and (1, 1) the bottom-right.
func (d Direction) Unit() (x, y float64) {
	switch d {
	case NW:
		return 0, 0
	case N:
		return 0.5, 0
	case NE:
		return 1, 0
	case E:
		return 1, 0.5
	case SE:
		return 1, 1
	case S:
		return 0.5, 1
	case SW:
		return 0, 1
	case W:
		return 0, 0.5
	default:
		return 0.5, 0.5
	}
}

// Point returns the point of r that d designates.
func (d Direction) Point(r gg.Rect) gg.Point {
	ux, uy := d.Unit()
	return gg.Pt(r.Min.X+ux*r.Width(), r.Min.Y+uy*r.Height())
}

// Place positions a child of size sz inside frame.
func (d Direction) Place(sz Size, frame gg.Rect) gg.Rect {
	ux, uy := d.Unit()
	x := frame.Min.X + ux*(frame.Width()-sz.W)
	y := frame.Min.Y + uy*(frame.Height()-sz.H)
	return sz.Rect(gg.Pt(x, y))
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		return "Direction(?)"
	}
}

// Alignment is the alignment of stack children along the cross axis.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
	// Baseline aligns the first text baselines of HStack children. In a
	// VStack it behaves as Start.
	Baseline
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case Baseline:
		return "Baseline"
	default:
		return "Alignment(?)"
	}
}

// offset returns the cross-axis offset of a child of length child in space.
func (a Alignment) offset(child, space float64) float64 {
	switch a {
	case End:
		return space - child
	case Middle:
		return (space - child) / 2
	default:
		return 0
	}
}

// finite replaces an Unbounded dimension with zero.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
