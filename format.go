package pathcore

import (
	"errors"
	"sort"
	"sync"
)

// Format is a path file format: it decodes text into a Path and encodes
// an authoring Document back into text.
//
// Decode is all-or-nothing: on error no partial path is returned.
// Encode likewise aborts before producing partial output. Both are pure
// transforms over their inputs and safe to call concurrently on
// different inputs.
type Format interface {
	// Name returns the format name (e.g., "LemLib v0.4").
	Name() string

	// Decode parses path file text into a single path. The recovered
	// path carries the speed limit derived from the file.
	Decode(data []byte) (*Path, error)

	// Encode renders the document's path into path file text.
	Encode(doc *Document) ([]byte, error)
}

var (
	formatMu sync.RWMutex
	formats  = map[string]Format{}
)

// RegisterFormat registers a path file format under its name.
//
// Re-registering a name replaces the previous format. Built-in formats
// register themselves during package initialization; callers can add
// their own variants the same way.
func RegisterFormat(f Format) error {
	if f == nil {
		return errors.New("pathcore: format must not be nil")
	}
	name := f.Name()
	if name == "" {
		return errors.New("pathcore: format name must not be empty")
	}
	formatMu.Lock()
	formats[name] = f
	formatMu.Unlock()
	return nil
}

// FormatByName returns the registered format with the given name.
func FormatByName(name string) (Format, bool) {
	formatMu.RLock()
	f, ok := formats[name]
	formatMu.RUnlock()
	return f, ok
}

// Formats returns the names of all registered formats, sorted.
func Formats() []string {
	formatMu.RLock()
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	formatMu.RUnlock()
	sort.Strings(names)
	return names
}
