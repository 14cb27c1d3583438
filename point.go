package ggplot

import "math"

// Point represents a position in device pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Coord is an integer drawing protocol coordinate, relative to the
// backend origin.
type Coord struct {
	X, Y int
}

// C is a convenience function to create a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Point converts the coordinate to a device point offset by origin.
func (c Coord) Point(origin Point) Point {
	return Point{X: origin.X + float64(c.X), Y: origin.Y + float64(c.Y)}
}

// Bounds is the device-space rectangle a backend draws into.
// Origin is added to every protocol coordinate.
type Bounds struct {
	Origin        Point
	Width, Height float64
}

// Size returns the bounds dimensions truncated to whole device pixels.
// Negative dimensions report as zero.
func (b Bounds) Size() (width, height uint32) {
	return toPixels(b.Width), toPixels(b.Height)
}

// Max returns the bottom-right corner of the bounds.
func (b Bounds) Max() Point {
	return Point{X: b.Origin.X + b.Width, Y: b.Origin.Y + b.Height}
}

func toPixels(v float64) uint32 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
