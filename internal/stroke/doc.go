// Package stroke converts stroked polylines into filled outlines.
//
// Fill-only painters cannot draw a line of positive width directly. This
// package builds a single closed polygon whose fill reproduces the stroke.
//
// # Uniform Outline
//
// [Outline] is the default algorithm. It offsets the whole polyline along one
// direction, perpendicular to the line from the last point to the first:
//
//  1. θ = atan2(first.Y - last.Y, first.X - last.X)
//  2. shift = width · (cos(θ+90°), sin(θ+90°))
//  3. outline = spine in order, then every spine point + shift in reverse
//
// The band lies on one side of the spine and corners are not mitered.
// Reversing the input flips the side the band appears on.
//
// # Mitered Outline
//
// [Expander] builds a centered outline with per-segment normals:
//   - Forward path: offset by -width/2 perpendicular to each segment
//   - Backward path: offset by +width/2, appended in reverse
//   - Joins: miter (bounded by the miter limit) or bevel
//   - Caps: butt
//
// # Degenerate Input
//
// An empty spine yields nil. A spine whose points all coincide yields a
// square dot of side max(width, 1) with its top-left corner on the point.
package stroke
