package recording

import (
	"fmt"

	"github.com/gogpu/ggplot"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// CmdFillPolygon fills a closed polygon with a solid color.
	CmdFillPolygon CommandType = iota
	// CmdPaintText paints a line of text.
	CmdPaintText
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillPolygon: "FillPolygon",
	CmdPaintText:   "PaintText",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return fmt.Sprintf("CommandType(%d)", c)
}

// Command is a single recorded canvas operation.
type Command interface {
	// Type returns the command type.
	Type() CommandType
}

// FillPolygonCommand fills the polygon through Points.
type FillPolygonCommand struct {
	Points []ggplot.Point
	Color  ggplot.RGBA
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

func (c FillPolygonCommand) String() string {
	return fmt.Sprintf("FillPolygon(%d points, %v)", len(c.Points), c.Color)
}

// PaintTextCommand paints Text with the top-left of its line box at Pos.
type PaintTextCommand struct {
	Text  string
	Font  ggplot.Font
	Size  float64
	Color ggplot.RGBA
	Pos   ggplot.Point
}

// Type implements Command.
func (PaintTextCommand) Type() CommandType { return CmdPaintText }

func (c PaintTextCommand) String() string {
	return fmt.Sprintf("PaintText(%q, family=%q, size=%g, at=(%g,%g))",
		c.Text, c.Font.Family, c.Size, c.Pos.X, c.Pos.Y)
}
