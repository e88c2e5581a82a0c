package elements

import "fmt"

// Element is the unit of reconciliation.
type Element struct {
	// ID is stable across replicas and time.
	ID string `json:"id" yaml:"id"`

	// Version is incremented by the owning client on every local mutation.
	// It is a per-element logical clock: higher is newer for this ID only.
	Version int `json:"version" yaml:"version"`

	// VersionNonce is regenerated randomly on every mutation and used only
	// to break ties between equal versions.
	VersionNonce int `json:"versionNonce" yaml:"versionNonce"`

	// Index is the fractional order key positioning this element among its
	// siblings. Empty means the element has not been assigned a key yet.
	Index string `json:"index" yaml:"index"`

	// Deleted marks a tombstone. Reconciliation treats it like any other field.
	Deleted bool `json:"isDeleted,omitempty" yaml:"isDeleted,omitempty"`

	// Updated is the epoch millisecond timestamp of the last mutation.
	Updated int64 `json:"updated,omitempty" yaml:"updated,omitempty"`

	// Data holds every other top-level field of the element (type, x, y,
	// width, strokeColor, ...). It is encoded flat, next to the fields above.
	Data map[string]any `json:"-" yaml:"-"`
}

// String returns a compact description used in logs and test failures.
func (e Element) String() string {
	return fmt.Sprintf("%s@v%d/%d[%s]", e.ID, e.Version, e.VersionNonce, e.Index)
}

// WithIndex returns a copy of e positioned at key.
func (e Element) WithIndex(key string) Element {
	e.Index = key
	return e
}

// SameRevision reports whether a and b describe the same mutation of the
// same element, i.e. they share ID, Version and VersionNonce.
func SameRevision(a, b Element) bool {
	return a.ID == b.ID && a.Version == b.Version && a.VersionNonce == b.VersionNonce
}

// IDs returns the ids of seq in order.
func IDs(seq []Element) []string {
	ids := make([]string, len(seq))
	for i, e := range seq {
		ids[i] = e.ID
	}
	return ids
}

// Clone returns a shallow copy of seq. Data maps are shared.
func Clone(seq []Element) []Element {
	if seq == nil {
		return nil
	}
	out := make([]Element, len(seq))
	copy(out, seq)
	return out
}
