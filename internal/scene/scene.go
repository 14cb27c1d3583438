// Package scene loads chart scenes from YAML files.
//
// A scene is a canvas size, a background and a list of drawing
// operations, each mapped onto one ggplot.Backend call:
//
//	width: 320
//	height: 200
//	background: "#ffffff"
//	stroke_mode: mitered
//	ops:
//	  - kind: path
//	    points: [[10, 190], [100, 60], [200, 120], [310, 20]]
//	    color: "#1f77b4"
//	    width: 3
//	  - kind: text
//	    at: [160, 10]
//	    text: Revenue
//	    size: 16
//	    anchor: {h: center}
//
// Documents are validated against an embedded JSON schema before they are
// decoded.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggplot"
)

//go:embed scene.schema.json
var schemaJSON []byte

var schema = gojsonschema.NewBytesLoader(schemaJSON)

// ErrInvalidScene is returned for documents that fail schema validation.
var ErrInvalidScene = errors.New("scene: invalid document")

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidScene, strings.Join(e.Problems, "; "))
}

// Is reports whether target is ErrInvalidScene.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidScene
}

// Scene is a decoded scene document.
type Scene struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Background    string  `yaml:"background"`
	StrokeMode    string  `yaml:"stroke_mode"`
	Join          string  `yaml:"join"`
	MiterLimit    float64 `yaml:"miter_limit"`
	DefaultFamily string  `yaml:"default_family"`
	Ops           []Op    `yaml:"ops"`
}

// Op is a single drawing operation.
type Op struct {
	Kind   string   `yaml:"kind"`
	Points [][2]int `yaml:"points"`
	At     [2]int   `yaml:"at"`
	Color  string   `yaml:"color"`
	Alpha  *float64 `yaml:"alpha"`
	Width  float64  `yaml:"width"`
	Filled bool     `yaml:"filled"`
	Text   string   `yaml:"text"`
	Size   float64  `yaml:"size"`
	Family string   `yaml:"family"`
	Style  string   `yaml:"style"`
	Anchor Anchor   `yaml:"anchor"`
}

// Anchor names the text anchor, e.g. {h: center, v: bottom}.
type Anchor struct {
	H string `yaml:"h"`
	V string `yaml:"v"`
}

// Parse validates and decodes a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("scene: validate: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, re := range result.Errors() {
			verr.Problems = append(verr.Problems, re.String())
		}
		return nil, verr
	}

	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Parse(data)
}

// Bounds returns the scene size as backend bounds.
func (s *Scene) Bounds() ggplot.Bounds {
	return ggplot.Bounds{Width: float64(s.Width), Height: float64(s.Height)}
}

// BackgroundColor returns the background, white if unset.
func (s *Scene) BackgroundColor() (ggplot.BackendColor, error) {
	if s.Background == "" {
		return ggplot.White, nil
	}
	c, ok := ggplot.Hex(s.Background)
	if !ok {
		return ggplot.BackendColor{}, fmt.Errorf("scene: bad background color %q", s.Background)
	}
	return c, nil
}

// Options returns the backend options the scene asks for.
func (s *Scene) Options() ([]ggplot.BackendOption, error) {
	mode, ok := ggplot.ParseStrokeMode(s.StrokeMode)
	if !ok {
		return nil, fmt.Errorf("scene: unknown stroke mode %q", s.StrokeMode)
	}
	opts := []ggplot.BackendOption{ggplot.WithStrokeMode(mode)}

	switch s.Join {
	case "", "miter":
	case "bevel":
		opts = append(opts, ggplot.WithJoin(ggplot.LineJoinBevel))
	default:
		return nil, fmt.Errorf("scene: unknown join %q", s.Join)
	}
	if s.MiterLimit != 0 {
		opts = append(opts, ggplot.WithMiterLimit(s.MiterLimit))
	}
	if s.DefaultFamily != "" {
		opts = append(opts, ggplot.WithDefaultFamily(s.DefaultFamily))
	}
	return opts, nil
}

// Model returns a draw-area model with the scene as its chart.
func (s *Scene) Model() (*ggplot.DrawAreaModel, error) {
	bg, err := s.BackgroundColor()
	if err != nil {
		return nil, err
	}
	return &ggplot.DrawAreaModel{Background: bg, Chart: s}, nil
}

// Plot implements ggplot.Chart. It stops at the first failing operation.
func (s *Scene) Plot(b *ggplot.Backend) error {
	for i, op := range s.Ops {
		if err := op.draw(b); err != nil {
			return fmt.Errorf("scene: op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

func (op Op) draw(b *ggplot.Backend) error {
	col, err := op.color()
	if err != nil {
		return err
	}
	width := op.Width
	if width == 0 {
		width = 1
	}
	style := ggplot.ShapeStyle{Fill: col, Width: width}
	pts := op.coords()

	switch op.Kind {
	case "pixel":
		return b.DrawPixel(coord(op.At), col)
	case "line":
		if len(pts) != 2 {
			return fmt.Errorf("need 2 points, got %d", len(pts))
		}
		return b.DrawLine(pts[0], pts[1], style)
	case "rect":
		if len(pts) != 2 {
			return fmt.Errorf("need 2 points, got %d", len(pts))
		}
		return b.DrawRect(pts[0], pts[1], style, op.Filled)
	case "path":
		return b.DrawPath(pts, style)
	case "polygon":
		return b.FillPolygon(pts, style)
	case "text":
		return b.DrawText(op.Text, op.textStyle(col), coord(op.At))
	default:
		return fmt.Errorf("unknown kind %q", op.Kind)
	}
}

func (op Op) color() (ggplot.BackendColor, error) {
	col := ggplot.Black
	if op.Color != "" {
		c, ok := ggplot.Hex(op.Color)
		if !ok {
			return col, fmt.Errorf("bad color %q", op.Color)
		}
		col = c
	}
	if op.Alpha != nil {
		col.Alpha = *op.Alpha
	}
	return col, nil
}

func (op Op) coords() []ggplot.Coord {
	out := make([]ggplot.Coord, len(op.Points))
	for i, p := range op.Points {
		out[i] = coord(p)
	}
	return out
}

func (op Op) textStyle(col ggplot.BackendColor) ggplot.TextStyle {
	size := op.Size
	if size == 0 {
		size = 12
	}
	face := ggplot.Font{Family: op.Family}
	switch op.Style {
	case "bold":
		face.Style = ggplot.FontStyleBold
	case "italic":
		face.Style = ggplot.FontStyleItalic
	}

	var anchor ggplot.Anchor
	switch op.Anchor.H {
	case "center":
		anchor.H = ggplot.HPosCenter
	case "right":
		anchor.H = ggplot.HPosRight
	}
	switch op.Anchor.V {
	case "center":
		anchor.V = ggplot.VPosCenter
	case "bottom":
		anchor.V = ggplot.VPosBottom
	}
	return ggplot.TextStyle{Face: face, FontSize: size, Fill: col, Pos: anchor}
}

func coord(p [2]int) ggplot.Coord {
	return ggplot.C(p[0], p[1])
}
