package elements

// Index maps element ids to elements. It is built for a single
// reconciliation and discarded afterwards.
type Index map[string]*Element

// ToIndex indexes seq by id. If seq repeats an id the last occurrence wins;
// inputs are expected to be unique. The index points at copies, so seq is
// never aliased.
func ToIndex(seq []Element) Index {
	idx := make(Index, len(seq))
	for i := range seq {
		e := seq[i]
		idx[e.ID] = &e
	}
	return idx
}

// Lookup returns the element stored under id, or nil when id is not indexed
// or is indexed without an element.
func (idx Index) Lookup(id string) *Element {
	return idx[id]
}

// Has reports whether id is indexed, even if it maps to no element.
func (idx Index) Has(id string) bool {
	_, ok := idx[id]
	return ok
}
