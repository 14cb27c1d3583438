package text

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a variant within a font family.
type Style uint8

const (
	// StyleRegular is the upright, normal-weight variant.
	StyleRegular Style = iota
	// StyleBold is the bold variant.
	StyleBold
	// StyleItalic is the italic variant.
	StyleItalic
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return "unknown"
	}
}

type libraryKey struct {
	family string
	style  Style
}

// libraryEntry parses its font data on first use.
type libraryEntry struct {
	data []byte
	once sync.Once
	src  *FontSource
	err  error
}

func (e *libraryEntry) source() (*FontSource, error) {
	e.once.Do(func() {
		if e.src == nil {
			e.src, e.err = NewFontSource(e.data)
		}
	})
	return e.src, e.err
}

// Library maps font family names to font sources.
// Family names are case-insensitive; "" is an alias of "sans-serif".
//
// Library is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	entries map[libraryKey]*libraryEntry
}

// NewLibrary creates a library preloaded with the Go fonts.
// The fonts are parsed lazily on first lookup.
func NewLibrary() *Library {
	l := NewEmptyLibrary()
	l.RegisterData("sans-serif", StyleRegular, goregular.TTF)
	l.RegisterData("sans-serif", StyleBold, gobold.TTF)
	l.RegisterData("sans-serif", StyleItalic, goitalic.TTF)
	l.RegisterData("monospace", StyleRegular, gomono.TTF)
	l.RegisterData("monospace", StyleBold, gomonobold.TTF)
	l.RegisterData("monospace", StyleItalic, gomonoitalic.TTF)
	l.RegisterData("bold", StyleRegular, gobold.TTF)
	return l
}

// NewEmptyLibrary creates a library with no families.
func NewEmptyLibrary() *Library {
	return &Library{entries: make(map[libraryKey]*libraryEntry)}
}

var (
	defaultLibraryOnce sync.Once
	defaultLibrary     *Library
)

// DefaultLibrary returns the process-wide library of Go fonts.
func DefaultLibrary() *Library {
	defaultLibraryOnce.Do(func() {
		defaultLibrary = NewLibrary()
	})
	return defaultLibrary
}

// Register adds a parsed source under family and style, replacing any
// previous registration.
func (l *Library) Register(family string, style Style, src *FontSource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[libraryKey{normalizeFamily(family), style}] = &libraryEntry{src: src}
}

// RegisterData adds raw font data under family and style. The data is
// parsed on the first Lookup that needs it.
func (l *Library) RegisterData(family string, style Style, data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[libraryKey{normalizeFamily(family), style}] = &libraryEntry{data: data}
}

// Lookup returns the source for family and style. A family without the
// requested style falls back to its regular variant.
func (l *Library) Lookup(family string, style Style) (*FontSource, error) {
	family = normalizeFamily(family)

	l.mu.RLock()
	e, ok := l.entries[libraryKey{family, style}]
	if !ok {
		e, ok = l.entries[libraryKey{family, StyleRegular}]
	}
	l.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return e.source()
}

// Families returns the registered family names, unsorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for k := range l.entries {
		if !seen[k.family] {
			seen[k.family] = true
			out = append(out, k.family)
		}
	}
	return out
}

func normalizeFamily(family string) string {
	family = strings.ToLower(strings.TrimSpace(family))
	if family == "" {
		return "sans-serif"
	}
	return family
}
