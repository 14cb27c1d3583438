// Package raster provides a pixel-image backend for the recording system.
// It replays recordings onto a [raster.Canvas] and encodes the result as PNG.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ggplot/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("chart.png")
package raster

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/ggplot"
	pixels "github.com/gogpu/ggplot/raster"
	"github.com/gogpu/ggplot/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by operations that need a canvas before
// Begin has been called.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to an RGBA image.
type Backend struct {
	canvas *pixels.Canvas
	opts   []pixels.Option
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a raster backend. opts are applied to the canvas
// created by each Begin. The backend must be started with Begin before use.
func NewBackend(opts ...pixels.Option) *Backend {
	return &Backend{opts: opts}
}

// Begin allocates a fresh canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("raster: invalid dimensions")
	}
	b.canvas = pixels.New(width, height, b.opts...)
	return nil
}

// End finishes the drawing. The image stays available until the next Begin.
func (b *Backend) End() error {
	if b.canvas == nil {
		return ErrNotStarted
	}
	return nil
}

// FillPolygon implements ggplot.Canvas. Fills before Begin are ignored.
func (b *Backend) FillPolygon(points []ggplot.Point, color ggplot.RGBA) {
	if b.canvas == nil {
		return
	}
	b.canvas.FillPolygon(points, color)
}

// MeasureText implements ggplot.Canvas.
func (b *Backend) MeasureText(text string, font ggplot.Font, size float64) (ggplot.TextExtents, error) {
	if b.canvas == nil {
		return ggplot.TextExtents{}, ErrNotStarted
	}
	return b.canvas.MeasureText(text, font, size)
}

// PaintText implements ggplot.Canvas.
func (b *Backend) PaintText(text string, font ggplot.Font, size float64, color ggplot.RGBA, pos ggplot.Point) error {
	if b.canvas == nil {
		return ErrNotStarted
	}
	return b.canvas.PaintText(text, font, size, color, pos)
}

// WriteTo writes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.canvas.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the image as PNG to path.
func (b *Backend) SaveToFile(path string) error {
	if b.canvas == nil {
		return ErrNotStarted
	}
	return b.canvas.SavePNG(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	if b.canvas == nil {
		return nil
	}
	return b.canvas.Image()
}

// Width returns the canvas width, or 0 before Begin.
func (b *Backend) Width() int {
	if b.canvas == nil {
		return 0
	}
	return b.canvas.Width()
}

// Height returns the canvas height, or 0 before Begin.
func (b *Backend) Height() int {
	if b.canvas == nil {
		return 0
	}
	return b.canvas.Height()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
