// Package folderview provides a folder card component for gg.
//
// # Overview
//
// folderview draws a stylised folder: a card whose upper band is cut to a
// folder silhouette with a curved tab, a sheet of paper peeking out of the
// tab, and a solid footer carrying a title, a subtitle and a "more" icon.
// The components are declarative values that render onto any gg drawing
// surface, either a raster [gg.Context] or a [recording.Recorder].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/folderview/card"
//	    "github.com/gogpu/folderview/theme"
//	    "github.com/gogpu/folderview/view"
//	)
//
//	th, err := theme.Load("purple.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc, err := view.Snapshot(card.NewFolderCard(card.WithTheme(th)), view.WithPadding(24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("folder.png")
//
// # Packages
//
//   - shape: folder outline, rectangles and the Geometry segment model
//   - canvas: the drawing surface abstraction and soft shadows
//   - view: view tree, layout, modifiers and render entry points
//   - card: PaperStack and FolderCard
//   - theme: colors, fonts and metrics
//
// # Logging
//
// The library is silent by default. [SetLogger] routes its diagnostics,
// such as warnings about clipping to a malformed folder outline, to any
// [slog.Logger].
//
// # Coordinate System
//
// Same as gg: origin at the top-left, X grows right, Y grows down. Angles
// are in radians and positive angles turn clockwise on screen.
//
// [gg.Context]: https://pkg.go.dev/github.com/gogpu/gg#Context
// [recording.Recorder]: https://pkg.go.dev/github.com/gogpu/gg/recording#Recorder
package folderview

// Version is the current version of the library.
const Version = "0.1.0"
