package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/fractional"
	"github.com/OP439/excalidraw/pkg/reconcile"
)

// recordingOrder wraps an Order and records which operations ran.
type recordingOrder struct {
	fractional.Order
	repairs int
}

func (o *recordingOrder) Repair(sorted []elements.Element) []elements.Element {
	o.repairs++
	return o.Order.Repair(sorted)
}

func TestNormalize_ValidInput(t *testing.T) {
	order := &recordingOrder{Order: fractional.New()}
	merged := []elements.Element{
		elem("a", 1, 0, "a0"),
		elem("b", 1, 0, "a1"),
	}

	ordered, repaired := reconcile.Normalize(order, merged)

	assert.False(t, repaired)
	assert.Zero(t, order.repairs)
	assert.Equal(t, merged, ordered)
}

func TestNormalize_UnsortedInputIsRepaired(t *testing.T) {
	// Validation runs on the merge as assembled, so a merely unsorted merge
	// takes the repair path. Repair keeps keys that are already valid.
	order := &recordingOrder{Order: fractional.New()}
	merged := []elements.Element{
		elem("b", 1, 0, "a1"),
		elem("a", 1, 0, "a0"),
	}

	ordered, repaired := reconcile.Normalize(order, merged)

	assert.True(t, repaired)
	assert.Equal(t, 1, order.repairs)
	assert.Equal(t, []elements.Element{elem("a", 1, 0, "a0"), elem("b", 1, 0, "a1")}, ordered)
}

func TestNormalize_CollidingKeys(t *testing.T) {
	idx := fractional.New()
	merged := []elements.Element{
		elem("b", 1, 0, "a0"),
		elem("a", 1, 0, "a0"),
		elem("c", 1, 0, "a1"),
	}
	assert.False(t, idx.Validate(merged))

	ordered, repaired := reconcile.Normalize(idx, merged)

	assert.True(t, repaired)
	assert.True(t, idx.Validate(ordered))
	assert.Equal(t, elements.IDs(idx.Sort(merged)), elements.IDs(ordered))
	assert.Equal(t, "a0", ordered[0].Index)
}

func TestNormalize_Empty(t *testing.T) {
	ordered, repaired := reconcile.Normalize(fractional.New(), nil)
	assert.False(t, repaired)
	assert.Empty(t, ordered)
}
