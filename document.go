package pathcore

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AppVersion is the authoring tool version recorded in exported
// documents.
const AppVersion = "0.5.0"

// documentPrefix marks the embedded full-fidelity payload appended after
// the format-specific body. A plain format consumer stops before it; the
// editor re-imports it to recover everything the format cannot express.
const documentPrefix = "#PATH.JERRYIO-DATA "

// Document is the complete authoring document: the set of paths plus the
// metadata the editor needs to restore a session with full fidelity
// (headings, units, point density, speed limits).
type Document struct {
	AppVersion string  `json:"appVersion"`
	Format     string  `json:"format"`
	Paths      []*Path `json:"paths"`
}

// NewDocument creates a document for the given format name and paths.
func NewDocument(format string, paths ...*Path) *Document {
	return &Document{AppVersion: AppVersion, Format: format, Paths: paths}
}

// DocumentExporter serializes a Document for embedding as the trailing
// metadata payload of an export.
type DocumentExporter interface {
	Export(doc *Document) ([]byte, error)
}

// JSONExporter is the default DocumentExporter. It renders the document
// as a single-line JSON object.
type JSONExporter struct{}

// Export implements DocumentExporter.
func (JSONExporter) Export(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

// DecodeDocument recovers the full-fidelity document embedded in exported
// text. It fails with ErrNoDocument when the input carries no payload,
// making it safe to probe arbitrary path files before falling back to the
// format's own decoder.
func DecodeDocument(data []byte) (*Document, error) {
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, documentPrefix) {
			continue
		}
		var doc Document
		if err := json.Unmarshal([]byte(line[len(documentPrefix):]), &doc); err != nil {
			return nil, fmt.Errorf("pathcore: invalid document payload: %w", err)
		}
		return &doc, nil
	}
	return nil, ErrNoDocument
}
