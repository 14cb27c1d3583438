package ggplot

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestViewerPlot(t *testing.T) {
	chart := ChartFunc(func(b *Backend) error {
		return b.DrawPixel(C(1, 1), Red)
	})
	v := NewViewer(&DrawAreaModel{Background: Blue, Chart: chart})

	c := &fakeCanvas{}
	bounds := Bounds{Origin: Pt(10, 10), Width: 20, Height: 30}
	if err := v.Plot(bounds, c); err != nil {
		t.Fatalf("Plot() = %v", err)
	}
	if len(c.fills) != 2 {
		t.Fatalf("got %d fills, want background + pixel", len(c.fills))
	}
	bg := fillCall{
		Points: []Point{{10, 10}, {10, 40}, {30, 40}, {30, 10}},
		Color:  Normalize(Blue),
	}
	if diff := cmp.Diff(bg, c.fills[0]); diff != "" {
		t.Errorf("background mismatch (-want +got):\n%s", diff)
	}
	if c.fills[1].Color != Normalize(Red) {
		t.Errorf("chart fill color = %v", c.fills[1].Color)
	}
}

func TestViewerPlotWithoutChart(t *testing.T) {
	v := NewViewer(nil)
	c := &fakeCanvas{}
	if err := v.Plot(Bounds{Width: 5, Height: 5}, c); err != nil {
		t.Fatalf("Plot() = %v", err)
	}
	if len(c.fills) != 1 || c.fills[0].Color != Normalize(White) {
		t.Errorf("fills = %+v, want one white background", c.fills)
	}
}

func TestViewerRenderLogsError(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	v := NewViewer(&DrawAreaModel{Chart: ChartFunc(func(*Backend) error {
		return errors.New("series out of range")
	})})
	v.Render(Bounds{Width: 5, Height: 5}, &fakeCanvas{})

	if !strings.Contains(buf.String(), "series out of range") {
		t.Errorf("expected plot error in log, got: %s", buf.String())
	}
}

func TestSharedModelConcurrentUpdate(t *testing.T) {
	shared := NewSharedModel(nil)
	v := NewSharedViewer(shared)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			shared.Update(func(m *DrawAreaModel) {
				m.Background = BackendColor{RGB: [3]uint8{uint8(i), 0, 0}, Alpha: 1}
			})
		}()
		go func() {
			defer wg.Done()
			_ = v.Plot(Bounds{Width: 4, Height: 4}, &fakeCanvas{})
		}()
	}
	wg.Wait()

	shared.Read(func(m DrawAreaModel) {
		if m.Background.Alpha != 1 {
			t.Errorf("background alpha = %v, want 1", m.Background.Alpha)
		}
	})
	if v.Model() != shared {
		t.Error("Model() did not return the shared model")
	}
}
