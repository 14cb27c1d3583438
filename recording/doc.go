// Package recording captures canvas operations for later playback.
//
// A Recorder is a ggplot.Canvas that stores every polygon fill and text
// paint as a typed command instead of painting it. The finished Recording
// can be replayed onto any registered Backend: the same chart can be
// rendered to a PNG and a PDF from one plotting pass.
//
// Commands are plain structs rather than a serialized byte stream, so a
// Recording is easy to inspect in tests and debuggers.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	viewer.Render(ggplot.Bounds{Width: 800, Height: 600}, rec)
//	r := rec.Finish()
//
//	backend, err := recording.NewBackend("pdf")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	return backend.(recording.FileBackend).SaveToFile("chart.pdf")
//
// # Backends
//
// Backends register themselves by name in init(), following the
// database/sql driver pattern. Import them for their side effect:
//
//	import _ "github.com/gogpu/ggplot/recording/backends/raster"
//	import _ "github.com/gogpu/ggplot/recording/backends/pdf"
package recording
