package ggplot

// TextExtents is the layout box of a shaped line of text.
type TextExtents struct {
	// Width is the horizontal advance of the line.
	Width float64
	// Ascent is the distance from the top of the line box to the baseline.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the line box.
	Descent float64
}

// Height returns the height of the line box.
func (e TextExtents) Height() float64 {
	return e.Ascent + e.Descent
}

// Canvas is the paint surface a [Backend] draws on. It exposes exactly the
// two primitives the backend builds everything else from: solid polygon
// fills and shaped text.
//
// A canvas handle is only valid for a single paint pass.
type Canvas interface {
	// FillPolygon fills the closed polygon through points with a solid
	// color. The last point connects back to the first implicitly.
	FillPolygon(points []Point, color RGBA)

	// MeasureText shapes text and returns its layout box without painting.
	MeasureText(text string, font Font, size float64) (TextExtents, error)

	// PaintText shapes and paints text with the top-left corner of its line
	// box at pos. The baseline lies at pos.Y + Ascent.
	PaintText(text string, font Font, size float64, color RGBA, pos Point) error
}
