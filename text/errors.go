package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when a family is not registered.
	ErrUnknownFamily = errors.New("text: unknown font family")

	// ErrInvalidSize is returned when a font size is not positive.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrNilSource is returned when shaping with a nil FontSource.
	ErrNilSource = errors.New("text: nil font source")
)
