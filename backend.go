package ggplot

import (
	"github.com/gogpu/ggplot/internal/stroke"
)

// Backend translates drawing protocol calls into fills and text paints on a
// Canvas. Every call is executed immediately; nothing is batched.
//
// A Backend is valid for a single paint pass. It is not safe for concurrent
// use.
type Backend struct {
	bounds   Bounds
	canvas   Canvas
	opts     backendOptions
	expander *stroke.Expander
}

// NewBackend creates a backend drawing on canvas within bounds.
// Protocol coordinates are shifted by bounds.Origin.
func NewBackend(bounds Bounds, canvas Canvas, opts ...BackendOption) *Backend {
	o := defaultBackendOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Backend{
		bounds: bounds,
		canvas: canvas,
		opts:   o,
	}
	if o.strokeMode == StrokeMitered {
		b.expander = &stroke.Expander{Join: o.join, MiterLimit: o.miterLimit}
	}
	return b
}

// Paint creates a backend for one pass, runs fn with it and releases it.
func Paint(bounds Bounds, canvas Canvas, fn func(*Backend) error, opts ...BackendOption) error {
	b := NewBackend(bounds, canvas, opts...)
	defer b.Release()
	return fn(b)
}

// Bounds returns the drawing bounds.
func (b *Backend) Bounds() Bounds {
	return b.bounds
}

// Size returns the drawing area in device pixels.
func (b *Backend) Size() (width, height uint32) {
	return b.bounds.Size()
}

// EnsurePrepared is a no-op; painting happens immediately.
func (b *Backend) EnsurePrepared() error {
	return b.check("ensure prepared")
}

// Present is a no-op; painting happens immediately.
func (b *Backend) Present() error {
	return b.check("present")
}

// Release drops the canvas handle. Protocol calls made afterwards return
// [ErrBackendReleased]. Release is idempotent.
func (b *Backend) Release() {
	b.canvas = nil
}

// Released reports whether Release has been called.
func (b *Backend) Released() bool {
	return b.canvas == nil
}

// DrawPixel draws a single pixel as a zero-length stroke of width 1.
func (b *Backend) DrawPixel(p Coord, c BackendColor) error {
	return b.DrawPath([]Coord{p, p}, c)
}

// DrawLine strokes the segment from -> to.
func (b *Backend) DrawLine(from, to Coord, style BackendStyle) error {
	return b.DrawPath([]Coord{from, to}, style)
}

// DrawRect draws the rectangle spanned by the upper-left and bottom-right
// corners. A filled rectangle is a single polygon fill and ignores the stroke
// width. An unfilled rectangle is four independent edge strokes.
func (b *Backend) DrawRect(ul, br Coord, style BackendStyle, filled bool) error {
	if err := b.check("draw rect"); err != nil {
		return err
	}

	if filled {
		corners := []Coord{ul, {X: ul.X, Y: br.Y}, br, {X: br.X, Y: ul.Y}}
		b.canvas.FillPolygon(b.shift(corners), Normalize(style.Color()))
		return nil
	}

	edges := [4][2]Coord{
		{ul, {X: br.X, Y: ul.Y}},
		{{X: br.X, Y: ul.Y}, br},
		{br, {X: ul.X, Y: br.Y}},
		{{X: ul.X, Y: br.Y}, ul},
	}
	for _, e := range edges {
		b.stroke(b.shift(e[:]), style)
	}
	return nil
}

// DrawPath strokes the open polyline through points. The path is never
// closed; an empty path draws nothing.
func (b *Backend) DrawPath(points []Coord, style BackendStyle) error {
	if err := b.check("draw path"); err != nil {
		return err
	}
	if len(points) == 0 {
		Logger().Warn("ggplot: empty path, nothing drawn")
		return nil
	}
	b.stroke(b.shift(points), style)
	return nil
}

// FillPolygon fills the polygon through vertices. Polygons with fewer than
// three vertices enclose no area and never reach the canvas.
func (b *Backend) FillPolygon(vertices []Coord, style BackendStyle) error {
	if err := b.check("fill polygon"); err != nil {
		return err
	}
	if len(vertices) == 0 {
		return nil
	}
	if len(vertices) < 3 {
		Logger().Warn("ggplot: polygon with fewer than 3 vertices skipped",
			"vertices", len(vertices))
		return nil
	}
	b.canvas.FillPolygon(b.shift(vertices), Normalize(style.Color()))
	return nil
}

// DrawText paints text positioned by the style's anchor relative to pos.
//
// The line box is measured first; a measurement failure is a [KindFont]
// error and a paint failure is a [KindDrawing] error.
func (b *Backend) DrawText(text string, style BackendTextStyle, pos Coord) error {
	if err := b.check("draw text"); err != nil {
		return err
	}

	font := b.font(style)
	ext, err := b.canvas.MeasureText(text, font, style.Size())
	if err != nil {
		return fontError("draw text", err)
	}

	origin := pos.Point(b.bounds.Origin).Add(style.Anchor().Offset(ext.Width, ext.Height()))
	if err := b.canvas.PaintText(text, font, style.Size(), Normalize(style.Color()), origin); err != nil {
		return drawingError("draw text", err)
	}
	return nil
}

// EstimateTextSize returns the layout box of text in device pixels.
func (b *Backend) EstimateTextSize(text string, style BackendTextStyle) (width, height uint32, err error) {
	if err := b.check("estimate text size"); err != nil {
		return 0, 0, err
	}
	ext, err := b.canvas.MeasureText(text, b.font(style), style.Size())
	if err != nil {
		return 0, 0, fontError("estimate text size", err)
	}
	return toPixels(ext.Width), toPixels(ext.Height()), nil
}

func (b *Backend) check(op string) error {
	if b.canvas == nil {
		return drawingError(op, ErrBackendReleased)
	}
	return nil
}

func (b *Backend) font(style BackendTextStyle) Font {
	f := style.Font()
	if f.Family == "" {
		f.Family = b.opts.defaultFamily
	}
	return f
}

// shift converts protocol coordinates into device points.
func (b *Backend) shift(coords []Coord) []Point {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = c.Point(b.bounds.Origin)
	}
	return pts
}

// stroke outlines the polyline and fills the result.
func (b *Backend) stroke(pts []Point, style BackendStyle) {
	spine := make([]stroke.Point, len(pts))
	for i, p := range pts {
		spine[i] = stroke.Point{X: p.X, Y: p.Y}
	}

	width := style.StrokeWidth()
	var outline []stroke.Point
	if b.expander != nil {
		b.expander.Width = width
		outline = b.expander.Expand(spine)
	} else {
		outline = stroke.Outline(spine, width)
	}
	if len(outline) == 4 && isDot(spine) {
		Logger().Debug("ggplot: degenerate stroke drawn as dot",
			"x", spine[0].X, "y", spine[0].Y, "width", width)
	}

	poly := make([]Point, len(outline))
	for i, p := range outline {
		poly[i] = Point{X: p.X, Y: p.Y}
	}
	b.canvas.FillPolygon(poly, Normalize(style.Color()))
}

func isDot(spine []stroke.Point) bool {
	for _, p := range spine[1:] {
		if p != spine[0] {
			return false
		}
	}
	return true
}
