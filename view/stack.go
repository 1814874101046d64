package view

import (
	"math"

	"github.com/gogpu/gg"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Axis(?)"
	}
}

// main returns the length of s along a.
func (a Axis) main(s Size) float64 {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// cross returns the length of s across a.
func (a Axis) cross(s Size) float64 {
	if a == Horizontal {
		return s.H
	}
	return s.W
}

// size builds a Size from main and cross lengths.
func (a Axis) size(main, cross float64) Size {
	if a == Horizontal {
		return Size{W: main, H: cross}
	}
	return Size{W: cross, H: main}
}

// split returns the main and cross coordinates of p.
func (a Axis) split(p gg.Point) (main, cross float64) {
	if a == Horizontal {
		return p.X, p.Y
	}
	return p.Y, p.X
}

// point builds a Point from main and cross coordinates.
func (a Axis) point(main, cross float64) gg.Point {
	if a == Horizontal {
		return gg.Pt(main, cross)
	}
	return gg.Pt(cross, main)
}

// Stack lays out its children in a row or a column.
//
// Children are proposed the stack's cross length and an unbounded main
// length. Spacers share the main-axis space left over when the stack is
// offered a bounded length.
type Stack struct {
	Axis Axis
	// Spacing is the gap between adjacent children.
	Spacing float64
	// Alignment positions children across the main axis.
	Alignment Alignment
	Children  []View
}

// VStack returns a vertical Stack.
func VStack(align Alignment, spacing float64, children ...View) Stack {
	return Stack{Axis: Vertical, Spacing: spacing, Alignment: align, Children: children}
}

// HStack returns a horizontal Stack.
func HStack(align Alignment, spacing float64, children ...View) Stack {
	return Stack{Axis: Horizontal, Spacing: spacing, Alignment: align, Children: children}
}

type stackLayout struct {
	sizes []Size
	size  Size
	// baseline is the shared baseline of a Baseline-aligned row.
	baseline float64
}

func (s Stack) baselineAligned() bool {
	return s.Axis == Horizontal && s.Alignment == Baseline
}

func (s Stack) layout(proposed Size) stackLayout {
	l := stackLayout{sizes: make([]Size, len(s.Children))}
	if len(s.Children) == 0 {
		return l
	}
	crossProposal := s.Axis.cross(proposed)

	used := s.Spacing * float64(len(s.Children)-1)
	spacers := 0
	for i, c := range s.Children {
		if sp, ok := c.(Spacer); ok {
			spacers++
			used += sp.MinLength
			continue
		}
		l.sizes[i] = c.Measure(s.Axis.size(Unbounded, crossProposal))
		used += s.Axis.main(l.sizes[i])
	}

	var extra float64
	if avail := s.Axis.main(proposed); spacers > 0 && !math.IsInf(avail, 1) && avail > used {
		extra = (avail - used) / float64(spacers)
	}

	var cross, above, below float64
	for i, c := range s.Children {
		if sp, ok := c.(Spacer); ok {
			l.sizes[i] = s.Axis.size(sp.MinLength+extra, 0)
			continue
		}
		sz := l.sizes[i]
		if s.baselineAligned() {
			b, _ := firstBaseline(c, sz)
			above = max(above, b)
			below = max(below, sz.H-b)
			continue
		}
		cross = max(cross, s.Axis.cross(sz))
	}
	if s.baselineAligned() {
		cross = above + below
		l.baseline = above
	}
	l.size = s.Axis.size(used+extra*float64(spacers), cross)
	return l
}

// Measure returns the total main length and the largest cross length.
func (s Stack) Measure(proposed Size) Size {
	return s.layout(proposed).size
}

// frames returns the frame of every child when the stack fills frame.
func (s Stack) frames(frame gg.Rect) []gg.Rect {
	l := s.layout(SizeOf(frame))
	out := make([]gg.Rect, len(s.Children))
	space := s.Axis.cross(SizeOf(frame))
	pos, origin := s.Axis.split(frame.Min)
	for i, c := range s.Children {
		sz := l.sizes[i]
		var off float64
		if s.baselineAligned() {
			b, _ := firstBaseline(c, sz)
			off = l.baseline - b
		} else {
			off = s.Alignment.offset(s.Axis.cross(sz), space)
		}
		out[i] = sz.Rect(s.Axis.point(pos, origin+off))
		pos += s.Axis.main(sz) + s.Spacing
	}
	return out
}

// Draw draws every child in its frame.
func (s Stack) Draw(d *Drawer, frame gg.Rect) {
	for i, r := range s.frames(frame) {
		s.Children[i].Draw(d, r)
	}
}

// FirstBaseline returns the baseline of the first child that has one.
func (s Stack) FirstBaseline(size Size) (float64, bool) {
	frames := s.frames(size.Rect(gg.Pt(0, 0)))
	for i, c := range s.Children {
		if b, ok := firstBaseline(c, SizeOf(frames[i])); ok {
			return frames[i].Min.Y + b, true
		}
	}
	return size.H, false
}

// ZStack overlays its children, each placed within the stack by Alignment.
// Children are drawn in order, so later children appear on top.
type ZStack struct {
	Alignment Direction
	Children  []View
}

// Overlay returns a ZStack.
func Overlay(align Direction, children ...View) ZStack {
	return ZStack{Alignment: align, Children: children}
}

// Measure returns the largest width and height among the children.
func (z ZStack) Measure(proposed Size) Size {
	var sz Size
	for _, c := range z.Children {
		cs := c.Measure(proposed)
		sz.W = max(sz.W, cs.W)
		sz.H = max(sz.H, cs.H)
	}
	return sz
}

// Draw draws the children in order, each placed by Alignment.
func (z ZStack) Draw(d *Drawer, frame gg.Rect) {
	proposed := SizeOf(frame)
	for _, c := range z.Children {
		c.Draw(d, z.Alignment.Place(c.Measure(proposed), frame))
	}
}
