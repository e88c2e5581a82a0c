package reconcile

import (
	"fmt"

	"github.com/OP439/excalidraw/pkg/elements"
)

// Changeset describes how a reconciled replica differs from the local
// replica it started from. Ids appear in reconciled order.
type Changeset struct {
	// Added ids did not exist locally.
	Added []string
	// Updated ids exist locally and now hold a different revision.
	Updated []string
	// Kept ids had a remote candidate but the local revision survived.
	Kept []string
	// Reindexed ids keep their revision but moved to a new order key.
	Reindexed []string
}

// HasChanges reports whether the local replica has to be replaced.
func (c *Changeset) HasChanges() bool {
	return c != nil && len(c.Added)+len(c.Updated)+len(c.Reindexed) > 0
}

// String returns a one line summary.
func (c *Changeset) String() string {
	if c == nil {
		return "no changeset"
	}
	return fmt.Sprintf("%d added, %d updated, %d kept, %d reindexed",
		len(c.Added), len(c.Updated), len(c.Kept), len(c.Reindexed))
}

// diff compares final against base. contested holds the ids that had a
// remote candidate at least once.
func diff(base, final []elements.Element, contested map[string]struct{}) *Changeset {
	index := elements.ToIndex(base)
	cs := &Changeset{
		Added:     []string{},
		Updated:   []string{},
		Kept:      []string{},
		Reindexed: []string{},
	}

	for _, e := range final {
		before := index.Lookup(e.ID)
		switch {
		case before == nil:
			cs.Added = append(cs.Added, e.ID)
		case !elements.SameRevision(*before, e):
			cs.Updated = append(cs.Updated, e.ID)
		default:
			if _, ok := contested[e.ID]; ok {
				cs.Kept = append(cs.Kept, e.ID)
			}
			if before.Index != e.Index {
				cs.Reindexed = append(cs.Reindexed, e.ID)
			}
		}
	}
	return cs
}
