// Package snapshot reads and writes element snapshots.
//
// A snapshot is either a bare list of elements or a scene document:
//
//	{"type": "excalidraw", "version": 2, "source": "...", "elements": [...]}
//
// JSON and YAML encodings are supported. Bare lists are written back as
// bare lists.
package snapshot

import (
	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/elements"
)

// Document is a scene snapshot.
type Document struct {
	Type     string             `json:"type" yaml:"type"`
	Version  int                `json:"version" yaml:"version"`
	Source   string             `json:"source,omitempty" yaml:"source,omitempty"`
	Elements []elements.Element `json:"elements" yaml:"elements"`
	AppState map[string]any     `json:"appState,omitempty" yaml:"appState,omitempty"`
	Files    map[string]any     `json:"files,omitempty" yaml:"files,omitempty"`

	// Bare is set when the document was read from a bare element list.
	Bare bool `json:"-" yaml:"-"`
}

// New wraps els in a scene document.
func New(els []elements.Element) *Document {
	if els == nil {
		els = []elements.Element{}
	}
	return &Document{
		Type:     constants.SnapshotType,
		Version:  constants.SnapshotVersion,
		Source:   constants.SnapshotSource,
		Elements: els,
	}
}

// WithElements returns a copy of d holding els. Scene metadata and the
// bare flag are kept.
func (d *Document) WithElements(els []elements.Element) *Document {
	out := *d
	if els == nil {
		els = []elements.Element{}
	}
	out.Elements = els
	return &out
}
