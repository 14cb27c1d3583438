package ggplot

import (
	"errors"
	"testing"
)

func TestDrawingErrorMessage(t *testing.T) {
	cause := errors.New("missing glyph")
	err := fontError("draw text", cause)
	want := "ggplot: font error in draw text: missing glyph"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDrawingErrorIs(t *testing.T) {
	font := fontError("op", errors.New("x"))
	draw := drawingError("op", ErrBackendReleased)

	if !errors.Is(font, ErrFont) || errors.Is(font, ErrDrawing) {
		t.Error("font error matched the wrong sentinel")
	}
	if !errors.Is(draw, ErrDrawing) || errors.Is(draw, ErrFont) {
		t.Error("drawing error matched the wrong sentinel")
	}
	if !errors.Is(draw, ErrBackendReleased) {
		t.Error("drawing error does not unwrap to its cause")
	}
}
