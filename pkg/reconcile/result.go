package reconcile

import (
	"fmt"
	"time"
)

// Result represents the outcome of a Reconciler run.
type Result struct {
	// Elements is the reconciled replica.
	Elements Reconciled

	// Changeset compares Elements with the local input. Nil when change
	// detection is disabled.
	Changeset *Changeset

	// Resolutions lists the decision taken for every remote id, in the
	// order the batches were processed.
	Resolutions []Resolution

	// Metadata about the reconciliation
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the reconciliation process.
type ResultMetadata struct {
	// ID identifies the run in logs.
	ID string

	// StartTime when reconciliation started
	StartTime time.Time

	// EndTime when reconciliation completed
	EndTime time.Time

	// Duration of the reconciliation
	Duration time.Duration

	// Stats about the reconciliation
	Stats ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	Batches        int
	LocalElements  int
	RemoteElements int
	OutputElements int

	// Per-element counters are summed over batches. LocalOnly counts, per
	// batch, the elements of that batch's local input that no remote
	// element contested.
	Duplicates int
	RemoteOnly int
	LocalOnly  int
	KeptLocal  int
	TookRemote int
	Reasons    map[Reason]int

	// OrderRepairs counts the batches whose merged keys did not validate.
	OrderRepairs int
	// RewrittenKeys counts the order keys the repairs replaced.
	RewrittenKeys int

	TotalTimeMs int64
}

// newResult creates a new result with defaults.
func newResult(id string) *Result {
	return &Result{
		Resolutions: []Resolution{},
		Metadata: ResultMetadata{
			ID:        id,
			StartTime: time.Now(),
			Stats: ResultStatistics{
				Reasons: make(map[Reason]int, len(Reasons)),
			},
		},
	}
}

// addBatch folds the counters of one merge into the statistics.
func (r *Result) addBatch(ms MergeStats) {
	s := &r.Metadata.Stats
	if s.Batches == 0 {
		s.LocalElements = ms.Local
	}
	s.Batches++
	s.RemoteElements += ms.Remote
	s.Duplicates += ms.Duplicates
	s.RemoteOnly += ms.RemoteOnly()
	s.LocalOnly += ms.LocalOnly
	s.KeptLocal += ms.KeptLocal()
	s.TookRemote += ms.TookRemote()
	for reason, n := range ms.Reasons {
		s.Reasons[reason] += n
	}
}

// finalize calculates duration and marks completion.
func (r *Result) finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.TotalTimeMs = r.Metadata.Duration.Milliseconds()
	r.Metadata.Stats.OutputElements = r.Elements.Len()
}

// Repaired reports whether any order key was rewritten.
func (r *Result) Repaired() bool {
	return r.Metadata.Stats.RewrittenKeys > 0
}

// HasChanges returns true if the local replica changed.
func (r *Result) HasChanges() bool {
	return r.Changeset.HasChanges()
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	summary := fmt.Sprintf("Reconciled %d elements from %d batch(es)", s.OutputElements, s.Batches)
	if r.Changeset != nil {
		summary += ": " + r.Changeset.String()
	}
	if s.Duplicates > 0 {
		summary += fmt.Sprintf(", %d duplicate(s) skipped", s.Duplicates)
	}
	if r.Repaired() {
		summary += " (order keys repaired)"
	}
	return summary
}
