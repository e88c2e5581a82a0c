package reconcile

import "github.com/OP439/excalidraw/pkg/elements"

// Reconciled is an ordered element sequence produced by reconciliation. It
// holds at most one element per id and its order keys validate. Only this
// package can build a non-empty Reconciled; the zero value is an empty
// replica.
type Reconciled struct {
	elements []elements.Element
}

// seal brands seq. Callers hand over ownership of seq.
func seal(seq []elements.Element) Reconciled {
	return Reconciled{elements: seq}
}

// Elements returns a copy of the reconciled sequence.
func (r Reconciled) Elements() []elements.Element {
	out := elements.Clone(r.elements)
	if out == nil {
		return []elements.Element{}
	}
	return out
}

// Len returns the number of elements.
func (r Reconciled) Len() int {
	return len(r.elements)
}

// At returns the element at position i.
func (r Reconciled) At(i int) elements.Element {
	return r.elements[i]
}

// Get returns the element with the given id.
func (r Reconciled) Get(id string) (elements.Element, bool) {
	for _, e := range r.elements {
		if e.ID == id {
			return e, true
		}
	}
	return elements.Element{}, false
}

// Contains reports whether id is present.
func (r Reconciled) Contains(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns the ids in order.
func (r Reconciled) IDs() []string {
	return elements.IDs(r.elements)
}
