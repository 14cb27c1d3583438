// Package text shapes and outlines text for ggplot canvases.
//
// The pipeline is split the same way for every canvas:
//
//   - FontSource: a parsed font file, shared and safe for concurrent use
//   - Library: maps font family names to sources
//   - Shaper: turns a string into a positioned Line of glyphs (HarfBuzz)
//   - Line.Outline: walks the vector outline of every glyph in device space
//
// # Example usage
//
//	lib := text.NewLibrary()
//	src, err := lib.Lookup("sans-serif", text.StyleRegular)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line, err := text.NewShaper().Shape("Hello", src, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line.Width, line.Ascent, line.Descent)
//
// # Built-in Families
//
// A new Library knows the Go fonts from golang.org/x/image/font/gofont:
// "" and "sans-serif" (Go Regular), "monospace" (Go Mono) and "bold"
// (Go Bold). Bold and italic variants of sans-serif and monospace are
// registered under the same family names.
//
// # Bidirectional Text
//
// The Shaper splits the string into directional runs with the Unicode
// bidi algorithm and shapes each run separately. Runs are laid out in
// visual order on a single line.
package text
