package fractional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/fractional"
)

func el(id, key string) elements.Element {
	return elements.Element{ID: id, Version: 1, Index: key}
}

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"a0", true},
		{"a1", true},
		{"a0V", true},
		{"Zz", true},
		{"", false},
		{"!", false},
		{"a", false},
		{"a10", false}, // trailing zero in the fractional part
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, fractional.IsValidKey(tt.key))
		})
	}
}

func TestValidate(t *testing.T) {
	idx := fractional.New()

	assert.True(t, idx.Validate(nil))
	assert.True(t, idx.Validate([]elements.Element{el("a", "a0"), el("b", "a1"), el("c", "a2")}))
	assert.False(t, idx.Validate([]elements.Element{el("a", "a1"), el("b", "a0")}), "descending")
	assert.False(t, idx.Validate([]elements.Element{el("a", "a0"), el("b", "a0")}), "collision")
	assert.False(t, idx.Validate([]elements.Element{el("a", "a0"), el("b", "")}), "missing key")
}

func TestInvalidIDs(t *testing.T) {
	seq := []elements.Element{el("a", "a0"), el("b", "a0"), el("c", "a2"), el("d", "??")}
	assert.Equal(t, []string{"b", "d"}, fractional.InvalidIDs(seq))
}

func TestCheck(t *testing.T) {
	seq := []elements.Element{
		el("a", "a0"),
		el("b", "a0"),
		el("c", ""),
		el("d", "a2"),
		el("e", "a1"),
		el("f", "??"),
	}

	got := fractional.Check(seq)
	assert.Equal(t, []fractional.Violation{
		{Position: 1, ID: "b", Index: "a0", Problem: fractional.ProblemDuplicate},
		{Position: 2, ID: "c", Index: "", Problem: fractional.ProblemMissing},
		{Position: 4, ID: "e", Index: "a1", Problem: fractional.ProblemOutOfOrder},
		{Position: 5, ID: "f", Index: "??", Problem: fractional.ProblemMalformed},
	}, got)

	assert.Equal(t, []string{"b", "c", "e", "f"}, fractional.InvalidIDs(seq))
	assert.False(t, fractional.New().Validate(seq))
	assert.Empty(t, fractional.Check([]elements.Element{el("a", "a0"), el("b", "a1")}))
}

func TestSort(t *testing.T) {
	idx := fractional.New()
	input := []elements.Element{
		el("later", ""),
		el("c", "a2"),
		el("b", "a0"),
		el("a", "a0"),
		el("late", ""),
	}

	sorted := idx.Sort(input)

	assert.Equal(t, []string{"a", "b", "c", "late", "later"}, elements.IDs(sorted))
	assert.Equal(t, "later", input[0].ID, "input must not be reordered")
}

func TestRepair_Collision(t *testing.T) {
	idx := fractional.New()
	sorted := idx.Sort([]elements.Element{el("x", "a0"), el("y", "a0"), el("z", "a1")})
	require.False(t, idx.Validate(sorted))

	repaired := idx.Repair(sorted)

	assert.True(t, idx.Validate(repaired))
	assert.Equal(t, elements.IDs(sorted), elements.IDs(repaired))
	assert.Equal(t, "a0", repaired[0].Index)
	assert.Equal(t, "a1", repaired[2].Index)
	assert.Greater(t, repaired[1].Index, "a0")
	assert.Less(t, repaired[1].Index, "a1")

	assert.Equal(t, "a0", sorted[1].Index, "input must not be modified")
}

func TestRepair_MissingAndMalformed(t *testing.T) {
	idx := fractional.New()
	sorted := idx.Sort([]elements.Element{el("p", ""), el("q", "a1"), el("r", "a")})

	repaired := idx.Repair(sorted)

	assert.True(t, idx.Validate(repaired))
	assert.Equal(t, elements.IDs(sorted), elements.IDs(repaired))
}

func TestRepair_AllInvalid(t *testing.T) {
	idx := fractional.New()
	sorted := []elements.Element{el("a", ""), el("b", ""), el("c", "")}

	repaired := idx.Repair(sorted)

	assert.True(t, idx.Validate(repaired))
	assert.Equal(t, []string{"a", "b", "c"}, elements.IDs(repaired))
}

func TestRepair_ValidSequenceUnchanged(t *testing.T) {
	idx := fractional.New()
	sorted := []elements.Element{el("a", "a0"), el("b", "a1")}

	assert.Equal(t, sorted, idx.Repair(sorted))
}

func TestGenerate(t *testing.T) {
	keys, err := fractional.Generate(5)
	require.NoError(t, err)
	require.Len(t, keys, 5)

	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
	for _, k := range keys {
		assert.True(t, fractional.IsValidKey(k), k)
	}

	empty, err := fractional.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestKeysBetween(t *testing.T) {
	keys, err := fractional.KeysBetween("a0", "a1", 3)
	require.NoError(t, err)
	require.Len(t, keys, 3)
	assert.Greater(t, keys[0], "a0")
	assert.Less(t, keys[2], "a1")

	_, err = fractional.KeysBetween("a1", "a0", 1)
	assert.Error(t, err)
}
