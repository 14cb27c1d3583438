// Package pdf provides a vector PDF backend for the recording system.
//
// One device pixel maps to one PDF point. Polygons are written as filled
// paths and text uses the PDF core fonts: "monospace" maps to Courier,
// "serif" to Times, and "sans-serif" or an empty family to Helvetica.
// Other families fail with text.ErrUnknownFamily.
//
//	import _ "github.com/gogpu/ggplot/recording/backends/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("chart.pdf")
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/text"
)

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

var (
	// ErrNotStarted is returned before Begin has been called.
	ErrNotStarted = errors.New("pdf: backend not started")

	// ErrClosed is returned once the document has been written out.
	ErrClosed = errors.New("pdf: document already written")
)

// coreFont is a PDF base-14 family with its vertical metrics in
// thousandths of the font size.
type coreFont struct {
	name            string
	ascent, descent float64
}

var (
	helvetica = coreFont{"Helvetica", 718, 207}
	courier   = coreFont{"Courier", 629, 157}
	times     = coreFont{"Times", 683, 217}
)

func lookupFont(family string) (coreFont, error) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "", "sans-serif", "bold", "helvetica":
		return helvetica, nil
	case "monospace", "courier":
		return courier, nil
	case "serif", "times":
		return times, nil
	default:
		return coreFont{}, fmt.Errorf("%w: %q", text.ErrUnknownFamily, family)
	}
}

func styleString(s ggplot.FontStyle) string {
	switch s {
	case ggplot.FontStyleBold:
		return "B"
	case ggplot.FontStyleItalic:
		return "I"
	default:
		return ""
	}
}

// Backend writes a single-page PDF document.
type Backend struct {
	doc           *gofpdf.Fpdf
	width, height int
	written       bool
	title         string
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a PDF backend. The backend must be started with
// Begin before use.
func NewBackend() *Backend {
	return &Backend{title: "ggplot chart"}
}

// SetTitle sets the document title written by the next Begin.
func (b *Backend) SetTitle(title string) {
	b.title = title
}

// Begin starts a new document with one page of the given size in points.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("pdf: invalid dimensions")
	}
	size := gofpdf.SizeType{Wd: float64(width), Ht: float64(height)}
	doc := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(b.title, true)
	doc.SetCreator("ggplot", true)
	doc.AddPageFormat("", size)

	b.doc = doc
	b.width, b.height = width, height
	b.written = false
	return doc.Error()
}

// End finishes the page and reports any error gofpdf accumulated.
func (b *Backend) End() error {
	if b.doc == nil {
		return ErrNotStarted
	}
	if err := b.doc.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// FillPolygon implements ggplot.Canvas.
func (b *Backend) FillPolygon(points []ggplot.Point, color ggplot.RGBA) {
	if b.doc == nil || b.written || len(points) < 3 {
		return
	}
	pts := make([]gofpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	b.setFill(color)
	b.doc.Polygon(pts, "F")
}

// MeasureText implements ggplot.Canvas using the core font widths.
func (b *Backend) MeasureText(s string, font ggplot.Font, size float64) (ggplot.TextExtents, error) {
	if b.doc == nil {
		return ggplot.TextExtents{}, ErrNotStarted
	}
	cf, err := lookupFont(font.Family)
	if err != nil {
		return ggplot.TextExtents{}, err
	}
	b.doc.SetFont(cf.name, styleString(font.Style), size)
	ext := ggplot.TextExtents{
		Width:   b.doc.GetStringWidth(s),
		Ascent:  cf.ascent * size / 1000,
		Descent: cf.descent * size / 1000,
	}
	return ext, b.doc.Error()
}

// PaintText implements ggplot.Canvas.
func (b *Backend) PaintText(s string, font ggplot.Font, size float64, color ggplot.RGBA, pos ggplot.Point) error {
	if b.doc == nil {
		return ErrNotStarted
	}
	if b.written {
		return ErrClosed
	}
	if size <= 0 {
		return fmt.Errorf("pdf: invalid font size %g", size)
	}
	cf, err := lookupFont(font.Family)
	if err != nil {
		return err
	}
	b.doc.SetFont(cf.name, styleString(font.Style), size)
	b.setFill(color)
	b.doc.Text(pos.X, pos.Y+cf.ascent*size/1000, s)
	return b.doc.Error()
}

// WriteTo writes the document to w. The document can be written once.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, ErrNotStarted
	}
	if b.written {
		return 0, ErrClosed
	}
	b.written = true
	cw := &countingWriter{w: w}
	err := b.doc.Output(cw)
	return cw.n, err
}

// SaveToFile writes the document to path. The document can be written once.
func (b *Backend) SaveToFile(path string) error {
	if b.doc == nil {
		return ErrNotStarted
	}
	if b.written {
		return ErrClosed
	}
	b.written = true
	return b.doc.OutputFileAndClose(path)
}

// Width returns the page width in points.
func (b *Backend) Width() int { return b.width }

// Height returns the page height in points.
func (b *Backend) Height() int { return b.height }

// setFill applies color to both the fill and text color, and sets the
// graphics state alpha.
func (b *Backend) setFill(color ggplot.RGBA) {
	c := ggplot.Denormalize(color)
	r, g, bl := int(c.RGB[0]), int(c.RGB[1]), int(c.RGB[2])
	b.doc.SetFillColor(r, g, bl)
	b.doc.SetTextColor(r, g, bl)
	b.doc.SetAlpha(c.Alpha, "Normal")
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
