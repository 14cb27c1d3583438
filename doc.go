// Package ggplot provides a plotting draw backend for canvases that can only
// fill polygons and paint text.
//
// # Overview
//
// A chart client issues drawing protocol calls (pixels, lines, rectangles,
// open paths, filled polygons, text) against a [Backend]. Each call is
// translated immediately into fills and text paints on a [Canvas]. Strokes
// are built by the stroke geometry engine, which turns a polyline and a width
// into a single closed polygon.
//
// # Quick Start
//
//	canvas := raster.New(640, 480)
//	b := ggplot.NewBackend(ggplot.Bounds{Width: 640, Height: 480}, canvas)
//	defer b.Release()
//
//	red := ggplot.ShapeStyle{Fill: ggplot.Red, Width: 4}
//	_ = b.DrawLine(ggplot.C(0, 0), ggplot.C(100, 0), red)
//	_ = canvas.SavePNG("line.png")
//
// # Coordinate System
//
// Protocol coordinates are integer [Coord] values relative to the backend
// origin. They are shifted by [Bounds.Origin] into device pixel space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Strokes
//
// By default a stroke is offset on one side of the polyline along a single
// direction derived from its first and last point. [WithStrokeMode] selects a
// centered, per-segment mitered outline instead.
//
// # Lifetime
//
// A Backend borrows its canvas for one paint pass. Call [Backend.Release]
// when the pass is over, or use [Paint] which does it for you.
package ggplot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
