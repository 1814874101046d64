// Package shape builds the outlines drawn by folderview.
//
// A [Shape] turns a bounding rectangle into a [Geometry]: an ordered list of
// segments (moves, lines, cubic Bezier curves, circular arcs and closes).
// Geometry is a plain value computed from scratch for every layout pass; it
// carries no state beyond the segments themselves and can be exported as a
// [gg.Path], as SVG path data, or emitted straight onto a drawing surface.
//
// The folder silhouette is produced by [Folder]:
//
//	f := shape.NewFolder(25)
//	g := f.Geometry(shape.R(0, 0, 250, 70))
//	path := g.Path()
//
// [gg.Path]: https://pkg.go.dev/github.com/gogpu/gg#Path
package shape
