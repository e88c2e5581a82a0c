package reconcile

import "github.com/OP439/excalidraw/pkg/elements"

// Resolution records how one remote id was placed.
type Resolution struct {
	ID       string
	Decision Decision
	Reason   Reason

	// Local is nil when the id only existed remotely.
	Local  *elements.Element
	Remote elements.Element
}

// Winner returns the element that was placed.
func (r Resolution) Winner() elements.Element {
	if r.Decision == KeepLocal && r.Local != nil {
		return *r.Local
	}
	return r.Remote
}

// MergeStats counts what a merge did.
type MergeStats struct {
	Local      int
	Remote     int
	Duplicates int
	LocalOnly  int
	Reasons    map[Reason]int
}

// KeptLocal returns how many shared ids kept the local element.
func (s MergeStats) KeptLocal() int {
	return s.Reasons[ReasonInteraction] + s.Reasons[ReasonNewerLocal] + s.Reasons[ReasonNonceTiebreak]
}

// TookRemote returns how many shared ids took the remote element.
func (s MergeStats) TookRemote() int {
	return s.Reasons[ReasonRemoteWins]
}

// RemoteOnly returns how many remote ids had no local counterpart.
func (s MergeStats) RemoteOnly() int {
	return s.Reasons[ReasonRemoteOnly]
}

// Merge returns the deduplicated union of local and remote. Remote elements
// are placed in batch order, the first occurrence of a repeated id wins, and
// local elements the batch never mentioned follow in local order. The result
// is not yet ordered by order key.
func Merge(local, remote []elements.Element, state elements.InteractionState) []elements.Element {
	merged, _ := assemble(local, remote, state, nil)
	return merged
}

// MergeWithStats is Merge plus counters.
func MergeWithStats(local, remote []elements.Element, state elements.InteractionState) ([]elements.Element, MergeStats) {
	return assemble(local, remote, state, nil)
}

// assemble implements Merge, reporting each remote placement to observe.
func assemble(local, remote []elements.Element, state elements.InteractionState, observe func(Resolution)) ([]elements.Element, MergeStats) {
	index := elements.ToIndex(local)
	merged := make([]elements.Element, 0, len(local)+len(remote))
	placed := make(map[string]struct{}, len(local)+len(remote))
	stats := MergeStats{
		Local:   len(local),
		Remote:  len(remote),
		Reasons: make(map[Reason]int, len(Reasons)),
	}

	for _, r := range remote {
		if _, ok := placed[r.ID]; ok {
			stats.Duplicates++
			continue
		}

		// An id indexed without an element counts as missing locally.
		l := index.Lookup(r.ID)
		decision, reason := Explain(l, r, state)
		res := Resolution{ID: r.ID, Decision: decision, Reason: reason, Local: l, Remote: r}

		merged = append(merged, res.Winner())
		placed[r.ID] = struct{}{}
		stats.Reasons[reason]++
		if observe != nil {
			observe(res)
		}
	}

	for _, l := range local {
		if _, ok := placed[l.ID]; ok {
			continue
		}
		merged = append(merged, l)
		placed[l.ID] = struct{}{}
		stats.LocalOnly++
	}

	return merged, stats
}
