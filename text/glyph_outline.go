package text

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
)

// Vec is a position in device pixels, Y down.
type Vec struct {
	X, Y float64
}

// Verb says how a Segment continues the outline.
type Verb uint8

const (
	MoveTo Verb = iota // start a new contour at Pts[0]
	LineTo             // straight edge to Pts[0]
	QuadTo             // quadratic curve via Pts[0] to Pts[1]
	CubeTo             // cubic curve via Pts[0], Pts[1] to Pts[2]
)

var verbNames = [...]string{"move", "line", "quad", "cube"}

func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return fmt.Sprintf("Verb(%d)", uint8(v))
}

// Arity is the number of points in Pts that the verb uses.
func (v Verb) Arity() int {
	switch v {
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one step of a glyph outline.
type Segment struct {
	Verb Verb
	Pts  [3]Vec
}

// End returns the point the segment finishes on.
func (s Segment) End() Vec { return s.Pts[s.Verb.Arity()-1] }

// Outline feeds fn the contours of every glyph in l, placed with the start
// of the baseline at (x, y). Bitmap-only glyphs such as color emoji are
// skipped.
func (l *Line) Outline(src *FontSource, x, y float64, fn func(Segment)) error {
	if src == nil {
		return ErrNilSource
	}
	if !(l.Size > 0) {
		return ErrInvalidSize
	}

	var buf sfnt.Buffer
	ppem := toFixed(l.Size)
	for _, g := range l.Glyphs {
		if g.ID > math.MaxUint16 {
			continue
		}
		path, err := src.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		switch {
		case errors.Is(err, sfnt.ErrColoredGlyph):
			continue
		case err != nil:
			return fmt.Errorf("text: glyph %d outline: %w", g.ID, err)
		}

		gx, gy := x+g.X, y+g.Y
		for _, in := range path {
			seg := Segment{Verb: verbOf(in.Op)}
			for i := range seg.Verb.Arity() {
				seg.Pts[i] = Vec{X: gx + fromFixed(in.Args[i].X), Y: gy + fromFixed(in.Args[i].Y)}
			}
			fn(seg)
		}
	}
	return nil
}

func verbOf(op sfnt.SegmentOp) Verb {
	switch op {
	case sfnt.SegmentOpLineTo:
		return LineTo
	case sfnt.SegmentOpQuadTo:
		return QuadTo
	case sfnt.SegmentOpCubeTo:
		return CubeTo
	}
	return MoveTo
}
