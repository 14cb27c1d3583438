package recording

import (
	"fmt"

	"github.com/gogpu/ggplot"
)

// TextMeasurer lays out text without painting it.
type TextMeasurer interface {
	MeasureText(text string, font ggplot.Font, size float64) (ggplot.TextExtents, error)
}

// RecorderOption configures a Recorder during creation.
type RecorderOption func(*Recorder)

// WithTextMeasurer sets the measurer used for MeasureText and for
// validating fonts in PaintText. The default measures with the Go fonts
// of the text package.
func WithTextMeasurer(m TextMeasurer) RecorderOption {
	return func(r *Recorder) {
		if m != nil {
			r.measurer = m
		}
	}
}

// Recorder captures canvas operations as commands.
// Use Finish to obtain a Recording that can be replayed to different
// backends.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	measurer      TextMeasurer
}

var _ ggplot.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a drawing of the given size.
func NewRecorder(width, height int, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		measurer: defaultMeasurer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the drawing width.
func (r *Recorder) Width() int { return r.width }

// Height returns the drawing height.
func (r *Recorder) Height() int { return r.height }

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int { return len(r.commands) }

// FillPolygon records a polygon fill. Polygons with fewer than 3 points
// are dropped.
func (r *Recorder) FillPolygon(points []ggplot.Point, color ggplot.RGBA) {
	if len(points) < 3 {
		return
	}
	r.commands = append(r.commands, FillPolygonCommand{
		Points: append([]ggplot.Point(nil), points...),
		Color:  color,
	})
}

// MeasureText delegates to the recorder's TextMeasurer.
func (r *Recorder) MeasureText(text string, font ggplot.Font, size float64) (ggplot.TextExtents, error) {
	return r.measurer.MeasureText(text, font, size)
}

// PaintText records a text paint. The font is resolved first so that an
// unknown family fails here rather than during playback.
func (r *Recorder) PaintText(text string, font ggplot.Font, size float64, color ggplot.RGBA, pos ggplot.Point) error {
	if _, err := r.measurer.MeasureText(text, font, size); err != nil {
		return err
	}
	r.commands = append(r.commands, PaintTextCommand{
		Text:  text,
		Font:  font,
		Size:  size,
		Color: color,
		Pos:   pos,
	})
	return nil
}

// Finish returns the recorded commands as a Recording and resets the
// recorder for reuse.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
	r.commands = make([]Command, 0, 64)
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the drawing width.
func (r *Recording) Width() int { return r.width }

// Height returns the drawing height.
func (r *Recording) Height() int { return r.height }

// Len returns the number of commands.
func (r *Recording) Len() int { return len(r.commands) }

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Playback replays the recording onto backend between Begin and End.
// The first failing text paint aborts playback.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPolygonCommand:
			backend.FillPolygon(c.Points, c.Color)
		case PaintTextCommand:
			if err := backend.PaintText(c.Text, c.Font, c.Size, c.Color, c.Pos); err != nil {
				return fmt.Errorf("recording: command %d (%s): %w", i, c.Type(), err)
			}
		}
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	ggplot.Logger().Debug("recording: playback complete",
		"commands", len(r.commands), "width", r.width, "height", r.height)
	return nil
}
