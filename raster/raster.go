// Package raster provides a CPU canvas for ggplot backed by an *image.RGBA.
//
// Polygons and glyph outlines are filled with the anti-aliasing rasterizer
// from golang.org/x/image/vector and composited source-over.
//
// Usage:
//
//	canvas := raster.New(640, 480, raster.WithBackground(ggplot.RGB(1, 1, 1)))
//	b := ggplot.NewBackend(ggplot.Bounds{Width: 640, Height: 480}, canvas)
//	...
//	_ = canvas.SavePNG("chart.png")
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/text"
)

// Canvas is a ggplot.Canvas that paints into an in-memory RGBA image.
// It is not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	rast   *vector.Rasterizer
	lib    *text.Library
	shaper *text.Shaper
}

var _ ggplot.Canvas = (*Canvas)(nil)

// New creates a canvas of the given size in pixels.
// Non-positive dimensions produce an empty canvas.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:   vector.NewRasterizer(width, height),
		lib:    o.library,
		shaper: o.shaper,
	}
	if o.background != nil {
		c.Clear(*o.background)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing image. It is shared with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Data returns the raw pixel data in RGBA format (4 bytes per pixel, row
// major, alpha-premultiplied). It is shared with the canvas.
func (c *Canvas) Data() []byte {
	return c.img.Pix
}

// Clear fills the whole canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col ggplot.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// Resize replaces the canvas with a cleared one of the new size.
// It is a no-op if the size is unchanged.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.Width() && height == c.Height() {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.rast = vector.NewRasterizer(width, height)
}

// FillPolygon fills the closed polygon through points with an anti-aliased
// solid color. Polygons with fewer than 3 points are ignored.
func (c *Canvas) FillPolygon(points []ggplot.Point, col ggplot.RGBA) {
	if len(points) < 3 || c.img.Rect.Empty() {
		return
	}
	c.rast.Reset(c.Width(), c.Height())
	c.rast.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		c.rast.LineTo(float32(p.X), float32(p.Y))
	}
	c.rast.ClosePath()
	c.fill(col)
}

// MeasureText returns the line box of text without painting it.
func (c *Canvas) MeasureText(s string, font ggplot.Font, size float64) (ggplot.TextExtents, error) {
	line, _, err := c.shape(s, font, size)
	if err != nil {
		return ggplot.TextExtents{}, err
	}
	return ggplot.TextExtents{Width: line.Width, Ascent: line.Ascent, Descent: line.Descent}, nil
}

// PaintText paints text with the top-left of its line box at pos.
func (c *Canvas) PaintText(s string, font ggplot.Font, size float64, col ggplot.RGBA, pos ggplot.Point) error {
	line, src, err := c.shape(s, font, size)
	if err != nil {
		return err
	}
	if len(line.Glyphs) == 0 || c.img.Rect.Empty() {
		return nil
	}

	c.rast.Reset(c.Width(), c.Height())
	started := false
	err = line.Outline(src, pos.X, pos.Y+line.Ascent, func(seg text.Segment) {
		p := seg.Pts
		switch seg.Verb {
		case text.MoveTo:
			if started {
				c.rast.ClosePath()
			}
			started = true
			c.rast.MoveTo(float32(p[0].X), float32(p[0].Y))
		case text.LineTo:
			c.rast.LineTo(float32(p[0].X), float32(p[0].Y))
		case text.QuadTo:
			c.rast.QuadTo(float32(p[0].X), float32(p[0].Y), float32(p[1].X), float32(p[1].Y))
		case text.CubeTo:
			c.rast.CubeTo(float32(p[0].X), float32(p[0].Y), float32(p[1].X), float32(p[1].Y),
				float32(p[2].X), float32(p[2].Y))
		}
	})
	if err != nil {
		return fmt.Errorf("raster: paint text: %w", err)
	}
	if started {
		c.rast.ClosePath()
		c.fill(col)
	}
	return nil
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (c *Canvas) fill(col ggplot.RGBA) {
	src := image.NewUniform(col.NRGBA())
	c.rast.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

func (c *Canvas) shape(s string, font ggplot.Font, size float64) (*text.Line, *text.FontSource, error) {
	src, err := c.lib.Lookup(font.Family, textStyle(font.Style))
	if err != nil {
		return nil, nil, err
	}
	line, err := c.shaper.Shape(s, src, size)
	if err != nil {
		return nil, nil, err
	}
	return line, src, nil
}

func textStyle(s ggplot.FontStyle) text.Style {
	switch s {
	case ggplot.FontStyleBold:
		return text.StyleBold
	case ggplot.FontStyleItalic:
		return text.StyleItalic
	default:
		return text.StyleRegular
	}
}
