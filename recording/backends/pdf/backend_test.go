package pdf

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/text"
)

func TestBackendRegistration(t *testing.T) {
	backend, err := recording.NewBackend("pdf")
	if err != nil {
		t.Fatalf("NewBackend(pdf) = %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, want *Backend", backend)
	}
}

func TestBackendNotStarted(t *testing.T) {
	b := NewBackend()
	b.FillPolygon([]ggplot.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, ggplot.RGB(0, 0, 0))

	if err := b.End(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("End() = %v, want ErrNotStarted", err)
	}
	if err := b.PaintText("x", ggplot.Font{}, 10, ggplot.RGBA{}, ggplot.Point{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("PaintText() = %v, want ErrNotStarted", err)
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo() = %v, want ErrNotStarted", err)
	}
	if err := b.Begin(-1, 10); err == nil {
		t.Error("Begin(-1, 10) = nil error")
	}
}

func TestMeasureText(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(200, 100); err != nil {
		t.Fatalf("Begin() = %v", err)
	}

	ext, err := b.MeasureText("Hello", ggplot.Font{}, 10)
	if err != nil {
		t.Fatalf("MeasureText() = %v", err)
	}
	if ext.Width <= 0 || ext.Width > 50 {
		t.Errorf("width = %v, want (0, 50]", ext.Width)
	}
	if math.Abs(ext.Ascent-7.18) > 1e-9 || math.Abs(ext.Descent-2.07) > 1e-9 {
		t.Errorf("ascent/descent = %v/%v, want 7.18/2.07", ext.Ascent, ext.Descent)
	}

	// Courier is fixed pitch: 600 units per glyph.
	mono, _ := b.MeasureText("iiii", ggplot.Font{Family: "monospace"}, 10)
	if math.Abs(mono.Width-24) > 1e-9 {
		t.Errorf("monospace width = %v, want 24", mono.Width)
	}

	bold, _ := b.MeasureText("Hello", ggplot.Font{Style: ggplot.FontStyleBold}, 10)
	if bold.Width <= ext.Width {
		t.Errorf("bold width %v not wider than regular %v", bold.Width, ext.Width)
	}
}

func TestLookupFont(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"", "Helvetica"},
		{"sans-serif", "Helvetica"},
		{"Monospace", "Courier"},
		{" serif ", "Times"},
	}
	for _, tt := range tests {
		cf, err := lookupFont(tt.family)
		if err != nil || cf.name != tt.want {
			t.Errorf("lookupFont(%q) = %q, %v; want %q", tt.family, cf.name, err, tt.want)
		}
	}
}

func TestUnknownFamily(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(50, 50); err != nil {
		t.Fatal(err)
	}
	font := ggplot.Font{Family: "cursive"}
	if _, err := b.MeasureText("x", font, 10); !errors.Is(err, text.ErrUnknownFamily) {
		t.Errorf("MeasureText() = %v, want ErrUnknownFamily", err)
	}
	if err := b.PaintText("x", font, 10, ggplot.RGBA{}, ggplot.Point{}); !errors.Is(err, text.ErrUnknownFamily) {
		t.Errorf("PaintText() = %v, want ErrUnknownFamily", err)
	}
}

func TestPlaybackWritesPDF(t *testing.T) {
	rec := recording.NewRecorder(300, 200)
	rec.FillPolygon([]ggplot.Point{{X: 10, Y: 10}, {X: 290, Y: 10}, {X: 290, Y: 190}, {X: 10, Y: 190}}, ggplot.RGBA{R: 0.2, G: 0.4, B: 0.8, A: 0.5})
	if err := rec.PaintText("Chart title", ggplot.Font{}, 14, ggplot.RGB(0, 0, 0), ggplot.Pt(20, 20)); err != nil {
		t.Fatalf("PaintText() = %v", err)
	}

	b := NewBackend()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	if b.Width() != 300 || b.Height() != 200 {
		t.Errorf("page = %dx%d, want 300x200", b.Width(), b.Height())
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() = %v", err)
	}
	if n != int64(buf.Len()) || !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF (%d bytes reported, %d written)", n, buf.Len())
	}

	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrClosed) {
		t.Errorf("second WriteTo() = %v, want ErrClosed", err)
	}
	if err := b.PaintText("late", ggplot.Font{}, 10, ggplot.RGBA{}, ggplot.Point{}); !errors.Is(err, ErrClosed) {
		t.Errorf("PaintText after write = %v, want ErrClosed", err)
	}
}

func TestSaveToFile(t *testing.T) {
	b := NewBackend()
	b.SetTitle("test")
	if err := b.Begin(100, 100); err != nil {
		t.Fatalf("Begin() = %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End() = %v", err)
	}

	path := filepath.Join(t.TempDir(), "chart.pdf")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() = %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() == 0 {
		t.Error("pdf file empty")
	}
}
