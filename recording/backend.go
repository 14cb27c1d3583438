package recording

import (
	"io"

	"github.com/gogpu/ggplot"
)

// Backend is a playback target: a Canvas bracketed by Begin and End.
// Playback calls Begin with the recording's size, replays every command
// through the Canvas methods, then calls End. Implementations register a
// factory under a name; see Register.
type Backend interface {
	ggplot.Canvas

	Begin(width, height int) error
	End() error
}

// WriterBackend is a Backend that can stream its finished output once End
// has returned.
type WriterBackend interface {
	Backend
	io.WriterTo
}

// FileBackend is a Backend that can store its finished output at a path
// once End has returned.
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}
