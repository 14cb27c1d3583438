package ggplot

import "github.com/gogpu/ggplot/internal/stroke"

// StrokeMode selects the outline algorithm used for lines and paths.
type StrokeMode uint8

const (
	// StrokeUniform offsets the whole polyline on one side along a single
	// direction derived from its first and last point. This is the default.
	StrokeUniform StrokeMode = iota

	// StrokeMitered builds a centered outline with per-segment normals and
	// joins at interior vertices.
	StrokeMitered
)

// String returns the name of the stroke mode.
func (m StrokeMode) String() string {
	switch m {
	case StrokeUniform:
		return "uniform"
	case StrokeMitered:
		return "mitered"
	default:
		return "unknown"
	}
}

// ParseStrokeMode converts a mode name into a StrokeMode.
// An empty name selects StrokeUniform.
func ParseStrokeMode(name string) (StrokeMode, bool) {
	switch name {
	case "", "uniform":
		return StrokeUniform, true
	case "mitered":
		return StrokeMitered, true
	default:
		return StrokeUniform, false
	}
}

// LineJoin specifies the corner shape of mitered strokes.
type LineJoin = stroke.Join

// Line join styles.
const (
	LineJoinMiter = stroke.JoinMiter
	LineJoinBevel = stroke.JoinBevel
)

// BackendOption configures a Backend during creation.
//
// Example:
//
//	b := ggplot.NewBackend(bounds, canvas,
//		ggplot.WithStrokeMode(ggplot.StrokeMitered),
//		ggplot.WithMiterLimit(2),
//	)
type BackendOption func(*backendOptions)

type backendOptions struct {
	strokeMode    StrokeMode
	join          LineJoin
	miterLimit    float64
	defaultFamily string
}

func defaultBackendOptions() backendOptions {
	return backendOptions{
		strokeMode: StrokeUniform,
		join:       LineJoinMiter,
		miterLimit: 4.0,
	}
}

// WithStrokeMode sets the outline algorithm for lines, paths and unfilled
// rectangles.
func WithStrokeMode(m StrokeMode) BackendOption {
	return func(o *backendOptions) {
		o.strokeMode = m
	}
}

// WithJoin sets the corner shape used in StrokeMitered mode.
func WithJoin(j LineJoin) BackendOption {
	return func(o *backendOptions) {
		o.join = j
	}
}

// WithMiterLimit sets the miter limit used in StrokeMitered mode.
// Values below 1 are ignored.
func WithMiterLimit(limit float64) BackendOption {
	return func(o *backendOptions) {
		if limit >= 1 {
			o.miterLimit = limit
		}
	}
}

// WithDefaultFamily sets the font family used for text styles whose family
// is empty.
func WithDefaultFamily(family string) BackendOption {
	return func(o *backendOptions) {
		o.defaultFamily = family
	}
}
