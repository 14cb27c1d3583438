package text

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource is one parsed TTF or OTF file. Parsing is expensive, so a
// source is loaded once and shared; it is read-only and safe for
// concurrent use.
//
// go-text shapes from it and sfnt supplies outlines and vertical metrics,
// so the file is held in both parsed forms.
type FontSource struct {
	raw   []byte
	name  string
	shape *font.Font
	sfnt  *sfnt.Font
}

// NewFontSource parses data. The caller keeps ownership of data.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	raw := bytes.Clone(data)

	face, err := font.ParseTTF(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	outlines, err := sfnt.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("text: parse font outlines: %w", err)
	}

	var buf sfnt.Buffer
	name, _ := outlines.Name(&buf, sfnt.NameIDFull)
	return &FontSource{raw: raw, name: name, shape: face.Font, sfnt: outlines}, nil
}

// NewFontSourceFromFile reads and parses the font at path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-chosen font file
	if err != nil {
		return nil, fmt.Errorf("text: read font %s: %w", path, err)
	}
	return NewFontSource(data)
}

// Name is the full name from the font's name table, possibly empty.
func (s *FontSource) Name() string { return s.name }

// Metrics returns ascent and descent at size pixels per em, both measured
// as positive distances from the baseline.
func (s *FontSource) Metrics(size float64) (ascent, descent float64, err error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return 0, 0, ErrInvalidSize
	}
	var buf sfnt.Buffer
	m, err := s.sfnt.Metrics(&buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return 0, 0, fmt.Errorf("text: font metrics: %w", err)
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), nil
}

// 26.6 fixed point helpers.
func toFixed(v float64) fixed.Int26_6   { return fixed.Int26_6(math.Round(v * 64)) }
func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
