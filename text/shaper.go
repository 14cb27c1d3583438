package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is a positioned glyph of a shaped line.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint32
	// X and Y are the pen position of the glyph relative to the start of
	// the baseline, with Y increasing down.
	X, Y float64
	// Advance is the horizontal advance of the glyph.
	Advance float64
	// Cluster is the rune index in the shaped string this glyph belongs to.
	Cluster int
}

// Line is a single line of shaped text laid out in visual order.
type Line struct {
	Glyphs []Glyph
	// Width is the total horizontal advance.
	Width float64
	// Ascent and Descent are positive distances from the baseline to the
	// top and bottom of the line box.
	Ascent, Descent float64
	// RTL reports a right-to-left base direction.
	RTL bool
	// Size is the font size the line was shaped at.
	Size float64
}

// Height returns Ascent + Descent.
func (l *Line) Height() float64 {
	return l.Ascent + l.Descent
}

// Shaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports ligatures, kerning, right-to-left and complex scripts.
//
// Shaper is safe for concurrent use. font.Face is not, so each Shape call
// wraps the shared *font.Font in a fresh face. HarfbuzzShaper instances are
// pooled via sync.Pool.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

var (
	defaultShaperOnce sync.Once
	defaultShaper     *Shaper
)

// DefaultShaper returns the process-wide shaper.
func DefaultShaper() *Shaper {
	defaultShaperOnce.Do(func() {
		defaultShaper = NewShaper()
	})
	return defaultShaper
}

// Shape lays out s on a single line with src at size pixels per em.
func (sh *Shaper) Shape(s string, src *FontSource, size float64) (*Line, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	ascent, descent, err := src.Metrics(size)
	if err != nil {
		return nil, err
	}

	line := &Line{Ascent: ascent, Descent: descent, Size: size}
	if s == "" {
		return line, nil
	}

	runs, rtl := splitRuns(s)
	line.RTL = rtl

	face := font.NewFace(src.shape)
	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	defer sh.pool.Put(hb)

	var pen float64
	for _, r := range runs {
		out := hb.Shape(shaping.Input{
			Text:      r.text,
			RunStart:  0,
			RunEnd:    len(r.text),
			Direction: r.dir,
			Face:      face,
			Size:      toFixed(size),
			Script:    detectScript(r.text),
			Language:  language.NewLanguage("en"),
		})

		for _, g := range out.Glyphs {
			adv := fromFixed(g.XAdvance)
			line.Glyphs = append(line.Glyphs, Glyph{
				ID:      uint32(g.GlyphID),
				X:       pen + fromFixed(g.XOffset),
				Y:       -fromFixed(g.YOffset),
				Advance: adv,
				Cluster: r.start + g.ClusterIndex,
			})
			pen += adv
		}

		line.Ascent = math.Max(line.Ascent, fromFixed(out.LineBounds.Ascent))
		line.Descent = math.Max(line.Descent, -fromFixed(out.LineBounds.Descent))
	}
	line.Width = pen
	return line, nil
}

// textRun is a directional run of runes.
type textRun struct {
	text  []rune
	start int
	dir   di.Direction
}

// splitRuns splits s into directional runs in visual order and reports
// whether the base direction is right-to-left.
func splitRuns(s string) ([]textRun, bool) {
	runes := []rune(s)
	single := []textRun{{text: runes, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return single, false
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return single, false
	}

	runs := make([]textRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, textRun{text: runes[start : end+1], start: start, dir: dir})
	}

	rtl := runs[0].dir == di.DirectionRTL
	if rtl {
		for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}
	return runs, rtl
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// users should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
