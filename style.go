package ggplot

// BackendStyle is the per-call style of shape drawing operations.
type BackendStyle interface {
	// Color returns the protocol color of the shape.
	Color() BackendColor
	// StrokeWidth returns the stroke width in device pixels.
	StrokeWidth() float64
}

// ShapeStyle is the common concrete [BackendStyle].
type ShapeStyle struct {
	Fill  BackendColor
	Width float64
}

// Color implements BackendStyle.
func (s ShapeStyle) Color() BackendColor { return s.Fill }

// StrokeWidth implements BackendStyle.
func (s ShapeStyle) StrokeWidth() float64 { return s.Width }

// HPos is the horizontal anchor of a text box.
type HPos uint8

const (
	// HPosLeft puts the left edge of the box at the anchor point.
	HPosLeft HPos = iota
	// HPosCenter centers the box horizontally on the anchor point.
	HPosCenter
	// HPosRight puts the right edge of the box at the anchor point.
	HPosRight
)

// String returns the name of the horizontal anchor.
func (h HPos) String() string {
	switch h {
	case HPosLeft:
		return "left"
	case HPosCenter:
		return "center"
	case HPosRight:
		return "right"
	default:
		return "unknown"
	}
}

// VPos is the vertical anchor of a text box.
type VPos uint8

const (
	// VPosTop puts the top edge of the box at the anchor point.
	VPosTop VPos = iota
	// VPosCenter centers the box vertically on the anchor point.
	VPosCenter
	// VPosBottom puts the bottom edge of the box at the anchor point.
	VPosBottom
)

// String returns the name of the vertical anchor.
func (v VPos) String() string {
	switch v {
	case VPosTop:
		return "top"
	case VPosCenter:
		return "center"
	case VPosBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Anchor is the reference point of a text layout box.
// The zero value anchors the box by its top-left corner.
type Anchor struct {
	H HPos
	V VPos
}

// Offset returns the translation from the anchor point to the top-left
// corner of a box of the given size.
func (a Anchor) Offset(width, height float64) Point {
	var off Point
	switch a.H {
	case HPosCenter:
		off.X = -width / 2
	case HPosRight:
		off.X = -width
	}
	switch a.V {
	case VPosCenter:
		off.Y = -height / 2
	case VPosBottom:
		off.Y = -height
	}
	return off
}

// FontStyle selects the slant or weight variant of a font family.
type FontStyle uint8

const (
	// FontStyleNormal is the regular variant.
	FontStyleNormal FontStyle = iota
	// FontStyleBold is the bold variant.
	FontStyleBold
	// FontStyleItalic is the italic variant.
	FontStyleItalic
)

// Font names a font for the canvas text system.
type Font struct {
	Family string
	Style  FontStyle
}

// BackendTextStyle is the per-call style of text drawing.
type BackendTextStyle interface {
	// Color returns the text color.
	Color() BackendColor
	// Size returns the font size in device pixels.
	Size() float64
	// Font returns the requested font.
	Font() Font
	// Anchor returns the anchor of the text box relative to the draw position.
	Anchor() Anchor
}

// TextStyle is the common concrete [BackendTextStyle].
type TextStyle struct {
	Face     Font
	FontSize float64
	Fill     BackendColor
	Pos      Anchor
}

// Color implements BackendTextStyle.
func (s TextStyle) Color() BackendColor { return s.Fill }

// Size implements BackendTextStyle.
func (s TextStyle) Size() float64 { return s.FontSize }

// Font implements BackendTextStyle.
func (s TextStyle) Font() Font { return s.Face }

// Anchor implements BackendTextStyle.
func (s TextStyle) Anchor() Anchor { return s.Pos }
