package ggplot

import "errors"

// Sentinel errors for the drawing protocol.
var (
	// ErrDrawing matches every drawing error of kind KindDrawing.
	ErrDrawing = errors.New("ggplot: drawing error")

	// ErrFont matches every drawing error of kind KindFont.
	ErrFont = errors.New("ggplot: font error")

	// ErrBackendReleased is returned by protocol calls on a released backend.
	ErrBackendReleased = errors.New("ggplot: backend used after release")
)

// ErrorKind classifies a [DrawingError].
type ErrorKind uint8

const (
	// KindDrawing is a failure of the canvas to paint.
	KindDrawing ErrorKind = iota
	// KindFont is a failure to resolve a font or shape text.
	KindFont
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindDrawing:
		return "drawing"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// DrawingError is returned by fallible drawing protocol operations.
// The caller decides whether to abort the whole plot or skip the element.
type DrawingError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *DrawingError) Error() string {
	msg := "ggplot: " + e.Kind.String() + " error"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying canvas or text system error.
func (e *DrawingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *DrawingError) Is(target error) bool {
	switch target {
	case ErrDrawing:
		return e.Kind == KindDrawing
	case ErrFont:
		return e.Kind == KindFont
	}
	return false
}

func fontError(op string, err error) error {
	return &DrawingError{Kind: KindFont, Op: op, Err: err}
}

func drawingError(op string, err error) error {
	return &DrawingError{Kind: KindDrawing, Op: op, Err: err}
}
