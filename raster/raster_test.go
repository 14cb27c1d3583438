package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/text"
)

var white = ggplot.RGB(1, 1, 1)

func near(got color.RGBA, want color.RGBA, tol int) bool {
	d := func(a, b uint8) bool {
		diff := int(a) - int(b)
		return diff >= -tol && diff <= tol
	}
	return d(got.R, want.R) && d(got.G, want.G) && d(got.B, want.B) && d(got.A, want.A)
}

func TestNew(t *testing.T) {
	c := New(64, 32)
	if c.Width() != 64 || c.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", c.Width(), c.Height())
	}
	if len(c.Data()) != 64*32*4 {
		t.Errorf("len(Data()) = %d", len(c.Data()))
	}
	if got := c.Image().RGBAAt(3, 3); got != (color.RGBA{}) {
		t.Errorf("new canvas pixel = %v, want transparent", got)
	}

	empty := New(-5, 10)
	if empty.Width() != 0 {
		t.Errorf("negative width gave %d", empty.Width())
	}
	empty.FillPolygon([]ggplot.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}}, ggplot.RGB(1, 0, 0))
}

func TestWithBackground(t *testing.T) {
	c := New(4, 4, WithBackground(white))
	if got := c.Image().RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestFillPolygon(t *testing.T) {
	c := New(100, 100, WithBackground(white))
	c.FillPolygon([]ggplot.Point{{X: 10, Y: 10}, {X: 60, Y: 10}, {X: 60, Y: 60}, {X: 10, Y: 60}}, ggplot.RGB(1, 0, 0))

	if got := c.Image().RGBAAt(30, 30); !near(got, color.RGBA{255, 0, 0, 255}, 1) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := c.Image().RGBAAt(80, 80); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside pixel = %v, want white", got)
	}
}

func TestFillPolygon_Alpha(t *testing.T) {
	c := New(20, 20, WithBackground(white))
	c.FillPolygon([]ggplot.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}, ggplot.RGBA{R: 1, A: 0.5})
	if got := c.Image().RGBAAt(10, 10); !near(got, color.RGBA{255, 127, 127, 255}, 2) {
		t.Errorf("blended pixel = %v, want ~(255,127,127)", got)
	}
}

func TestFillPolygon_TooFewPoints(t *testing.T) {
	c := New(10, 10)
	c.FillPolygon([]ggplot.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, ggplot.RGB(1, 0, 0))
	for _, b := range c.Data() {
		if b != 0 {
			t.Fatal("degenerate polygon painted pixels")
		}
	}
}

func TestBackendLine(t *testing.T) {
	c := New(120, 100, WithBackground(white))
	b := ggplot.NewBackend(ggplot.Bounds{Width: 120, Height: 100}, c)
	defer b.Release()

	if err := b.DrawLine(ggplot.C(10, 50), ggplot.C(110, 50), ggplot.ShapeStyle{Fill: ggplot.Red, Width: 4}); err != nil {
		t.Fatalf("DrawLine() = %v", err)
	}
	// The uniform outline lies above a left-to-right spine.
	if got := c.Image().RGBAAt(60, 48); !near(got, color.RGBA{255, 0, 0, 255}, 1) {
		t.Errorf("band pixel = %v, want red", got)
	}
	if got := c.Image().RGBAAt(60, 53); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel below spine = %v, want white", got)
	}
}

func TestMeasureText(t *testing.T) {
	c := New(10, 10)
	ext, err := c.MeasureText("Hello", ggplot.Font{}, 16)
	if err != nil {
		t.Fatalf("MeasureText() = %v", err)
	}
	if ext.Width <= 0 || ext.Ascent <= 0 || ext.Descent <= 0 {
		t.Errorf("extents = %+v, want positive", ext)
	}

	bold, err := c.MeasureText("Hello", ggplot.Font{Style: ggplot.FontStyleBold}, 16)
	if err != nil {
		t.Fatalf("MeasureText(bold) = %v", err)
	}
	if bold.Width <= ext.Width {
		t.Errorf("bold width %v not wider than regular %v", bold.Width, ext.Width)
	}

	if _, err := c.MeasureText("x", ggplot.Font{Family: "no-such-family"}, 16); !errors.Is(err, text.ErrUnknownFamily) {
		t.Errorf("MeasureText(unknown) = %v, want ErrUnknownFamily", err)
	}
}

func TestPaintText(t *testing.T) {
	c := New(200, 60)
	pos := ggplot.Pt(20, 10)
	ext, err := c.MeasureText("Hello", ggplot.Font{}, 24)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.PaintText("Hello", ggplot.Font{}, 24, ggplot.RGB(0, 0, 0), pos); err != nil {
		t.Fatalf("PaintText() = %v", err)
	}

	img := c.Image()
	painted := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			painted++
			if float64(x) < pos.X-1 || float64(x) > pos.X+ext.Width+1 ||
				float64(y) < pos.Y-1 || float64(y) > pos.Y+ext.Height()+1 {
				t.Fatalf("pixel (%d,%d) painted outside the line box", x, y)
			}
		}
	}
	if painted == 0 {
		t.Error("PaintText painted nothing")
	}
}

func TestPaintText_Empty(t *testing.T) {
	c := New(10, 10)
	if err := c.PaintText("", ggplot.Font{}, 12, ggplot.RGB(0, 0, 0), ggplot.Pt(0, 0)); err != nil {
		t.Errorf("PaintText(\"\") = %v", err)
	}
}

func TestWithFontLibrary(t *testing.T) {
	c := New(10, 10, WithFontLibrary(text.NewEmptyLibrary()))
	if _, err := c.MeasureText("x", ggplot.Font{}, 12); !errors.Is(err, text.ErrUnknownFamily) {
		t.Errorf("MeasureText with empty library = %v, want ErrUnknownFamily", err)
	}
}

func TestResize(t *testing.T) {
	c := New(10, 10, WithBackground(white))
	img := c.Image()
	c.Resize(10, 10)
	if c.Image() != img {
		t.Error("same-size Resize replaced the image")
	}
	c.Resize(30, 20)
	if c.Width() != 30 || c.Height() != 20 {
		t.Errorf("size after Resize = %dx%d", c.Width(), c.Height())
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(16, 8, WithBackground(white))
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("decoded bounds = %v", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Errorf("SavePNG() = %v", err)
	}
	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
