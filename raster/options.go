package raster

import (
	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/text"
)

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	library    *text.Library
	shaper     *text.Shaper
	background *ggplot.RGBA
}

func defaultOptions() options {
	return options{
		library: text.DefaultLibrary(),
		shaper:  text.DefaultShaper(),
	}
}

// WithFontLibrary sets the font library used to resolve families.
// A nil library is ignored.
func WithFontLibrary(lib *text.Library) Option {
	return func(o *options) {
		if lib != nil {
			o.library = lib
		}
	}
}

// WithShaper sets the text shaper. A nil shaper is ignored.
func WithShaper(sh *text.Shaper) Option {
	return func(o *options) {
		if sh != nil {
			o.shaper = sh
		}
	}
}

// WithBackground clears the new canvas to col. Without it the canvas
// starts fully transparent.
func WithBackground(col ggplot.RGBA) Option {
	return func(o *options) {
		o.background = &col
	}
}
