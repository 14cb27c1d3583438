package recording

import (
	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/text"
)

// FontMeasurer measures text with a font library and shaper.
type FontMeasurer struct {
	Library *text.Library
	Shaper  *text.Shaper
}

func defaultMeasurer() *FontMeasurer {
	return &FontMeasurer{Library: text.DefaultLibrary(), Shaper: text.DefaultShaper()}
}

// MeasureText implements TextMeasurer.
func (m *FontMeasurer) MeasureText(s string, font ggplot.Font, size float64) (ggplot.TextExtents, error) {
	style := text.StyleRegular
	switch font.Style {
	case ggplot.FontStyleBold:
		style = text.StyleBold
	case ggplot.FontStyleItalic:
		style = text.StyleItalic
	}

	src, err := m.Library.Lookup(font.Family, style)
	if err != nil {
		return ggplot.TextExtents{}, err
	}
	line, err := m.Shaper.Shape(s, src, size)
	if err != nil {
		return ggplot.TextExtents{}, err
	}
	return ggplot.TextExtents{Width: line.Width, Ascent: line.Ascent, Descent: line.Descent}, nil
}
