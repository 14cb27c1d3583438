package stroke

import (
	"math"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-10 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Outline returns the uniform one-sided outline of spine.
//
// The offset direction is derived once from the first and last point, not
// per segment, so bends are not mitered. The result holds the spine followed
// by the shifted spine in reverse order: 2·len(spine) vertices, closing
// implicitly back to spine[0].
func Outline(spine []Point, width float64) []Point {
	if len(spine) == 0 {
		return nil
	}
	if coincident(spine) {
		return Dot(spine[0], width)
	}

	first, last := spine[0], spine[len(spine)-1]
	theta := math.Atan2(first.Y-last.Y, first.X-last.X)
	normal := theta + math.Pi/2
	shift := Vec2{X: width * math.Cos(normal), Y: width * math.Sin(normal)}

	out := make([]Point, 0, 2*len(spine))
	out = append(out, spine...)
	for i := len(spine) - 1; i >= 0; i-- {
		out = append(out, spine[i].Add(shift))
	}
	return out
}

// Dot returns the square drawn for a zero-length stroke at p.
// The side is max(width, 1) so that hairlines still cover a pixel.
func Dot(p Point, width float64) []Point {
	side := math.Max(width, 1)
	return []Point{
		p,
		{X: p.X + side, Y: p.Y},
		{X: p.X + side, Y: p.Y + side},
		{X: p.X, Y: p.Y + side},
	}
}

// coincident reports whether every point equals the first one.
func coincident(spine []Point) bool {
	for _, p := range spine[1:] {
		if p != spine[0] {
			return false
		}
	}
	return true
}

// SignedArea returns the shoelace area of the closed polygon through pts.
// The sign gives the winding direction.
func SignedArea(pts []Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Join specifies the shape of interior corners of a mitered outline.
type Join uint8

const (
	// JoinMiter extends the outer edges to a sharp corner, falling back to
	// a bevel past the miter limit.
	JoinMiter Join = iota
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// String returns the name of the join.
func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// Expander builds centered, per-segment outlines.
type Expander struct {
	Width      float64
	Join       Join
	MiterLimit float64
}

// NewExpander creates an expander with miter joins and a miter limit of 4.
func NewExpander(width float64) *Expander {
	return &Expander{
		Width:      width,
		Join:       JoinMiter,
		MiterLimit: 4.0,
	}
}

// Expand returns the centered outline of spine as a single polygon:
// the forward offsets in order followed by the backward offsets reversed,
// with butt caps at both ends.
func (e *Expander) Expand(spine []Point) []Point {
	pts := dedupe(spine)
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return Dot(pts[0], e.Width)
	}

	hw := e.Width / 2
	forward := make([]Point, 0, 2*len(pts))
	backward := make([]Point, 0, 2*len(pts))

	var prevTan, prevNorm Vec2
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		tan := p1.Sub(p0).Normalize()
		norm := tan.Perp().Scale(hw)

		if i == 0 {
			forward = append(forward, p0.Add(norm.Neg()))
			backward = append(backward, p0.Add(norm))
		} else {
			forward, backward = e.join(forward, backward, p0, prevTan, tan, prevNorm, norm)
		}

		forward = append(forward, p1.Add(norm.Neg()))
		backward = append(backward, p1.Add(norm))
		prevTan, prevNorm = tan, norm
	}

	out := forward
	for i := len(backward) - 1; i >= 0; i-- {
		out = append(out, backward[i])
	}
	return out
}

// join connects the segment ending at p (tangent t0, normal n0) to the one
// starting at p (tangent t1, normal n1). The outer side receives the miter
// point when it is within the limit; the inner side is routed through p.
func (e *Expander) join(forward, backward []Point, p Point, t0, t1, n0, n1 Vec2) ([]Point, []Point) {
	cross := t0.Cross(t1)
	cos := t0.Dot(t1)

	if cos > 0 && math.Abs(cross) < 1e-9 {
		return append(forward, p.Add(n1.Neg())), append(backward, p.Add(n1))
	}

	miter, ok := e.miterOffset(n0, n1, cos)

	if cross > 0 {
		// Turning toward the backward side: forward is outer.
		if ok {
			forward = append(forward, p.Add(miter.Neg()))
		}
		forward = append(forward, p.Add(n1.Neg()))
		backward = append(backward, p, p.Add(n1))
	} else {
		if ok {
			backward = append(backward, p.Add(miter))
		}
		backward = append(backward, p.Add(n1))
		forward = append(forward, p, p.Add(n1.Neg()))
	}
	return forward, backward
}

// miterOffset returns the offset from the corner to the outer miter point
// along the +normal side, and whether the miter is within the limit.
func (e *Expander) miterOffset(n0, n1 Vec2, cos float64) (Vec2, bool) {
	if e.Join != JoinMiter || 1+cos < 1e-9 {
		return Vec2{}, false
	}
	// The miter length over the half width is 1/cos(φ/2), and
	// cos²(φ/2) = (1+cos φ)/2.
	if 2/(1+cos) > e.MiterLimit*e.MiterLimit {
		return Vec2{}, false
	}
	return n0.Add(n1).Scale(1 / (1 + cos)), true
}

// dedupe drops consecutive duplicate points.
func dedupe(spine []Point) []Point {
	if len(spine) == 0 {
		return nil
	}
	out := make([]Point, 0, len(spine))
	out = append(out, spine[0])
	for _, p := range spine[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
