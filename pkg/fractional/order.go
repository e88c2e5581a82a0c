package fractional

import (
	"fmt"
	"sort"

	"roci.dev/fracdex"

	"github.com/OP439/excalidraw/pkg/elements"
)

// Order validates, sorts and repairs the order keys of element sequences.
type Order interface {
	// Validate reports whether every key is well formed and strictly
	// increasing along seq.
	Validate(seq []elements.Element) bool

	// Sort returns seq stably sorted by order key.
	Sort(seq []elements.Element) []elements.Element

	// Repair rewrites keys of an already sorted sequence so that it
	// validates, without changing the element order.
	Repair(sorted []elements.Element) []elements.Element
}

// Indexer is the fracdex backed Order.
type Indexer struct{}

var _ Order = Indexer{}

// New returns the default Order.
func New() Indexer {
	return Indexer{}
}

// IsValidKey reports whether key is a well formed fracdex key.
func IsValidKey(key string) bool {
	if key == "" {
		return false
	}
	// KeyBetween validates its bounds before generating anything.
	_, err := fracdex.KeyBetween(key, "")
	return err == nil
}

// Problem names why an order key does not validate.
type Problem string

// Key problems, checked in this order.
const (
	ProblemMissing    Problem = "missing"
	ProblemMalformed  Problem = "malformed"
	ProblemDuplicate  Problem = "duplicate"
	ProblemOutOfOrder Problem = "out of order"
)

// Violation is an element whose key does not validate at its position.
type Violation struct {
	Position int
	ID       string
	Index    string
	Problem  Problem
}

// Check returns the elements of seq whose key is missing, malformed, or
// does not sort strictly after the preceding element's key.
func Check(seq []elements.Element) []Violation {
	var out []Violation
	for i, e := range seq {
		var p Problem
		switch {
		case e.Index == "":
			p = ProblemMissing
		case !IsValidKey(e.Index):
			p = ProblemMalformed
		case i > 0 && seq[i-1].Index == e.Index:
			p = ProblemDuplicate
		case i > 0 && seq[i-1].Index > e.Index:
			p = ProblemOutOfOrder
		default:
			continue
		}
		out = append(out, Violation{Position: i, ID: e.ID, Index: e.Index, Problem: p})
	}
	return out
}

// Validate implements Order.
func (Indexer) Validate(seq []elements.Element) bool {
	return len(Check(seq)) == 0
}

// InvalidIDs returns the ids of the elements Check reports.
func InvalidIDs(seq []elements.Element) []string {
	var ids []string
	for _, v := range Check(seq) {
		ids = append(ids, v.ID)
	}
	return ids
}

// Sort implements Order. Keys compare bytewise, equal keys fall back to the
// element id so that every replica picks the same order for a collision.
// Elements without a key go last, also by id.
func (Indexer) Sort(seq []elements.Element) []elements.Element {
	sorted := elements.Clone(seq)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.Index == "") != (b.Index == "") {
			return b.Index == ""
		}
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.ID < b.ID
	})
	return sorted
}

// Repair implements Order. Elements whose key is valid and greater than the
// last kept key keep it; every run of rejected elements is given fresh keys
// between its kept neighbours. The input is not modified.
func (Indexer) Repair(sorted []elements.Element) []elements.Element {
	out := elements.Clone(sorted)
	keep := make([]bool, len(out))
	last := ""
	for i, e := range out {
		if IsValidKey(e.Index) && (last == "" || e.Index > last) {
			keep[i] = true
			last = e.Index
		}
	}

	lo := ""
	for i := 0; i < len(out); {
		if keep[i] {
			lo = out[i].Index
			i++
			continue
		}
		j := i
		for j < len(out) && !keep[j] {
			j++
		}
		hi := ""
		if j < len(out) {
			hi = out[j].Index
		}
		keys, err := fracdex.NKeysBetween(lo, hi, uint(j-i))
		if err != nil {
			return rekey(out)
		}
		for k, key := range keys {
			out[i+k].Index = key
		}
		i = j
	}
	return out
}

// rekey assigns every element a fresh key in sequence order.
func rekey(seq []elements.Element) []elements.Element {
	keys, err := fracdex.NKeysBetween("", "", uint(len(seq)))
	if err != nil {
		// fracdex only fails on invalid bounds and both bounds are open.
		panic(fmt.Sprintf("fractional: generating %d keys: %v", len(seq), err))
	}
	for i := range seq {
		seq[i].Index = keys[i]
	}
	return seq
}

// Generate returns n ascending keys.
func Generate(n int) ([]string, error) {
	return KeysBetween("", "", n)
}

// KeysBetween returns n ascending keys strictly between lo and hi. Empty
// bounds are open.
func KeysBetween(lo, hi string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	keys, err := fracdex.NKeysBetween(lo, hi, uint(n))
	if err != nil {
		return nil, fmt.Errorf("generating %d keys between %q and %q: %w", n, lo, hi, err)
	}
	return keys, nil
}
