// Command ggplotdemo renders a chart scene to PNG or PDF.
//
// Without -scene it draws a built-in demo chart:
//
//	ggplotdemo -output demo.png
//	ggplotdemo -scene chart.yaml -backend pdf -output chart.pdf
//
// The scene is recorded once and played back on the chosen backend.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/ggplot"
	logx "github.com/gogpu/ggplot/internal/log"
	"github.com/gogpu/ggplot/internal/scene"
	"github.com/gogpu/ggplot/recording"
	_ "github.com/gogpu/ggplot/recording/backends/pdf"
	_ "github.com/gogpu/ggplot/recording/backends/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ggplotdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("ggplotdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenePath = fs.String("scene", "", "YAML scene file (default: built-in demo)")
		output    = fs.String("output", "", "output file (default: chart.<backend extension>)")
		backend   = fs.String("backend", "raster", "playback backend: raster or pdf")
		width     = fs.Int("width", 640, "demo chart width")
		height    = fs.Int("height", 400, "demo chart height")
		mode      = fs.String("stroke", "", "demo stroke mode: uniform or mitered")
		logOpts   logx.Options
	)
	fs.StringVar(&logOpts.Level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&logOpts.Format, "log-format", "", "console log format: text or json")
	fs.StringVar(&logOpts.File, "log-file", "", "also write JSON logs to this rotating file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, closeLog := logx.New(logOpts.Merge(logx.FromEnv()), stderr)
	defer closeLog()
	ggplot.SetLogger(logger)
	defer ggplot.SetLogger(nil)

	var sc *scene.Scene
	if *scenePath != "" {
		s, err := scene.Load(*scenePath)
		if err != nil {
			return err
		}
		sc = s
	} else {
		if *width <= 0 || *height <= 0 {
			return fmt.Errorf("invalid size %dx%d", *width, *height)
		}
		sc = demoScene(*width, *height, *mode)
	}

	model, err := sc.Model()
	if err != nil {
		return err
	}
	opts, err := sc.Options()
	if err != nil {
		return err
	}

	rec := recording.NewRecorder(sc.Width, sc.Height)
	if err := ggplot.NewViewer(model, opts...).Plot(sc.Bounds(), rec); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	r := rec.Finish()
	logger.Debug("recorded scene", "commands", r.Len(), "width", r.Width(), "height", r.Height())

	b, err := recording.NewBackend(*backend)
	if err != nil {
		return err
	}
	if err := r.Playback(b); err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = "chart" + extension(*backend)
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return errors.New("backend " + *backend + " cannot write files")
	}
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Info("chart saved", "path", path, "backend", *backend, "size", fmt.Sprintf("%dx%d", sc.Width, sc.Height))
	return nil
}

func extension(backend string) string {
	if backend == "pdf" {
		return ".pdf"
	}
	return ".png"
}

// demoScene builds a line chart of two damped waves with axes and labels.
func demoScene(w, h int, mode string) *scene.Scene {
	const margin = 50
	s := &scene.Scene{Width: w, Height: h, Background: "#ffffff", StrokeMode: mode}

	x0, y0, x1, y1 := margin, margin/2, w-margin/2, h-margin
	s.Ops = append(s.Ops,
		scene.Op{Kind: "rect", Points: [][2]int{{x0, y0}, {x1, y1}}, Color: "#f4f6fa", Filled: true},
		scene.Op{Kind: "path", Points: [][2]int{{x0, y0}, {x0, y1}, {x1, y1}}, Color: "#333333", Width: 2},
		scene.Op{Kind: "text", At: [2]int{(x0 + x1) / 2, y1 + 8}, Text: "time", Size: 14,
			Anchor: scene.Anchor{H: "center"}},
		scene.Op{Kind: "text", At: [2]int{x0 - 8, (y0 + y1) / 2}, Text: "amplitude", Size: 14,
			Style: "italic", Anchor: scene.Anchor{H: "right", V: "center"}},
	)

	for i := 1; i < 10; i++ {
		x := x0 + (x1-x0)*i/10
		s.Ops = append(s.Ops, scene.Op{Kind: "line", Points: [][2]int{{x, y1}, {x, y1 + 5}}, Color: "#333333"})
	}

	series := []struct {
		color string
		phase float64
	}{
		{"#1f77b4", 0},
		{"#d62728", math.Pi / 2},
	}
	for _, sr := range series {
		var pts [][2]int
		for x := x0; x <= x1; x += 4 {
			t := float64(x-x0) / float64(x1-x0) * 4 * math.Pi
			v := math.Exp(-t/8) * math.Sin(t+sr.phase)
			y := (y0+y1)/2 - int(v*float64(y1-y0)/2.2)
			pts = append(pts, [2]int{x, y})
		}
		s.Ops = append(s.Ops, scene.Op{Kind: "path", Points: pts, Color: sr.color, Width: 3})
	}
	return s
}
