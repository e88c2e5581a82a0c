package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/reconcile"
)

func TestMerge_PlacementOrder(t *testing.T) {
	local := []elements.Element{
		elem("l1", 1, 0, "a0"),
		elem("shared", 1, 0, "a1"),
		elem("l2", 1, 0, "a2"),
	}
	remote := []elements.Element{
		elem("r1", 1, 0, "a3"),
		elem("shared", 2, 0, "a1"),
		elem("r2", 1, 0, "a4"),
	}

	merged := reconcile.Merge(local, remote, elements.InteractionState{})

	assert.Equal(t, []string{"r1", "shared", "r2", "l1", "l2"}, elements.IDs(merged))
	shared, ok := find(merged, "shared")
	require.True(t, ok)
	assert.Equal(t, 2, shared.Version)
}

func TestMerge_DuplicateInBatch(t *testing.T) {
	remote := []elements.Element{
		elem("a", 2, 0, "a0"),
		elem("a", 5, 0, "a1"),
	}

	merged, stats := reconcile.MergeWithStats(nil, remote, elements.InteractionState{})

	require.Len(t, merged, 1)
	assert.Equal(t, 2, merged[0].Version)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, stats.RemoteOnly())
}

func TestMerge_DuplicateResolvedAgainstLocal(t *testing.T) {
	// The first occurrence is resolved against local; later copies are
	// dropped even when they would have won.
	local := []elements.Element{elem("a", 3, 0, "a0")}
	remote := []elements.Element{
		elem("a", 1, 0, "a0"),
		elem("a", 9, 0, "a0"),
	}

	merged := reconcile.Merge(local, remote, elements.InteractionState{})

	require.Len(t, merged, 1)
	assert.Equal(t, 3, merged[0].Version)
}

func TestMerge_DuplicateLocalIDs(t *testing.T) {
	local := []elements.Element{
		elem("a", 1, 0, "a0"),
		elem("a", 2, 0, "a1"),
	}

	merged := reconcile.Merge(local, nil, elements.InteractionState{})

	require.Len(t, merged, 1)
	assert.Equal(t, 1, merged[0].Version)
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	local := []elements.Element{elem("a", 1, 0, "a0")}
	remote := []elements.Element{elem("a", 2, 0, "a1"), elem("b", 1, 0, "a2")}
	localCopy := elements.Clone(local)
	remoteCopy := elements.Clone(remote)

	merged := reconcile.Merge(local, remote, elements.InteractionState{})
	merged[0].Index = "zz"

	assert.Equal(t, localCopy, local)
	assert.Equal(t, remoteCopy, remote)
}

func TestMergeWithStats(t *testing.T) {
	local := []elements.Element{
		elem("edit", 1, 0, "a0"),
		elem("newer", 5, 0, "a1"),
		elem("tie", 2, 1, "a2"),
		elem("stale", 1, 0, "a3"),
		elem("mine", 1, 0, "a4"),
	}
	remote := []elements.Element{
		elem("edit", 4, 0, "a0"),
		elem("newer", 2, 0, "a1"),
		elem("tie", 2, 9, "a2"),
		elem("stale", 3, 0, "a3"),
		elem("theirs", 1, 0, "a5"),
		elem("theirs", 2, 0, "a5"),
	}
	state := elements.InteractionState{EditingID: "edit"}

	merged, stats := reconcile.MergeWithStats(local, remote, state)

	assert.Len(t, merged, 6)
	assert.Equal(t, 5, stats.Local)
	assert.Equal(t, 6, stats.Remote)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, stats.LocalOnly)
	assert.Equal(t, 3, stats.KeptLocal())
	assert.Equal(t, 1, stats.TookRemote())
	assert.Equal(t, 1, stats.RemoteOnly())
	assert.Equal(t, 1, stats.Reasons[reconcile.ReasonInteraction])
	assert.Equal(t, 1, stats.Reasons[reconcile.ReasonNewerLocal])
	assert.Equal(t, 1, stats.Reasons[reconcile.ReasonNonceTiebreak])
}

func TestResolutionWinner(t *testing.T) {
	l := elem("a", 3, 0, "a0")
	r := elem("a", 1, 0, "a0")

	assert.Equal(t, l, reconcile.Resolution{Decision: reconcile.KeepLocal, Local: &l, Remote: r}.Winner())
	assert.Equal(t, r, reconcile.Resolution{Decision: reconcile.KeepRemote, Local: &l, Remote: r}.Winner())
	assert.Equal(t, r, reconcile.Resolution{Decision: reconcile.KeepLocal, Remote: r}.Winner())
}
