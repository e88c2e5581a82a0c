package elements_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OP439/excalidraw/pkg/elements"
)

func TestInteractionState_Protects(t *testing.T) {
	tests := []struct {
		name  string
		state elements.InteractionState
		id    string
		want  bool
	}{
		{"idle", elements.InteractionState{}, "a", false},
		{"editing", elements.InteractionState{EditingID: "a"}, "a", true},
		{"resizing", elements.InteractionState{ResizingID: "a"}, "a", true},
		{"dragging", elements.InteractionState{DraggingID: "a"}, "a", true},
		{"other element", elements.InteractionState{EditingID: "b"}, "a", false},
		{"empty id never protected", elements.InteractionState{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Protects(tt.id))
		})
	}
}

func TestInteractionState_IsIdle(t *testing.T) {
	assert.True(t, elements.InteractionState{}.IsIdle())
	assert.False(t, elements.InteractionState{DraggingID: "x"}.IsIdle())
}

func TestToIndex(t *testing.T) {
	seq := []elements.Element{
		{ID: "a", Version: 1},
		{ID: "b", Version: 2},
	}

	idx := elements.ToIndex(seq)
	require.Len(t, idx, 2)

	a := idx.Lookup("a")
	require.NotNil(t, a)
	assert.Equal(t, 1, a.Version)
	assert.Nil(t, idx.Lookup("missing"))
	assert.True(t, idx.Has("b"))
	assert.False(t, idx.Has("c"))

	// The index must not alias the input slice.
	a.Version = 99
	assert.Equal(t, 1, seq[0].Version)
}

func TestIndex_NilEntry(t *testing.T) {
	idx := elements.Index{"ghost": nil}
	assert.True(t, idx.Has("ghost"))
	assert.Nil(t, idx.Lookup("ghost"))
}

func TestSameRevision(t *testing.T) {
	a := elements.Element{ID: "a", Version: 3, VersionNonce: 7, Index: "a0"}
	b := a.WithIndex("a1")
	assert.True(t, elements.SameRevision(a, b))

	b.VersionNonce = 8
	assert.False(t, elements.SameRevision(a, b))
}

func TestCloneAndIDs(t *testing.T) {
	seq := []elements.Element{{ID: "x"}, {ID: "y"}}
	clone := elements.Clone(seq)
	clone[0].ID = "z"

	assert.Equal(t, []string{"x", "y"}, elements.IDs(seq))
	assert.Equal(t, []string{"z", "y"}, elements.IDs(clone))
	assert.Nil(t, elements.Clone(nil))
}

func TestElement_String(t *testing.T) {
	e := elements.Element{ID: "rect", Version: 2, VersionNonce: 41, Index: "a0"}
	assert.Equal(t, "rect@v2/41[a0]", e.String())
}

func TestElement_JSONKeepsContentFields(t *testing.T) {
	in := []byte(`{"id":"r1","type":"rectangle","x":10,"y":20,"width":100,"version":3,"versionNonce":77,"index":"a0","isDeleted":false,"groupIds":["g1"]}`)

	var e elements.Element
	require.NoError(t, json.Unmarshal(in, &e))
	assert.Equal(t, "r1", e.ID)
	assert.Equal(t, 3, e.Version)
	assert.Equal(t, 77, e.VersionNonce)
	assert.Equal(t, "a0", e.Index)
	assert.Equal(t, "rectangle", e.Data["type"])
	assert.EqualValues(t, 10, e.Data["x"])
	assert.EqualValues(t, 100, e.Data["width"])
	assert.Equal(t, []any{"g1"}, e.Data["groupIds"])
	assert.NotContains(t, e.Data, "id")
	assert.NotContains(t, e.Data, "version")

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestElement_JSONWithoutContent(t *testing.T) {
	var e elements.Element
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","version":1,"versionNonce":2,"index":null}`), &e))
	assert.Nil(t, e.Data)
	assert.Empty(t, e.Index)
}

func TestElement_YAMLKeepsContentFields(t *testing.T) {
	in := []byte("id: t1\ntype: text\ntext: hello\nx: 5\nversion: 2\nversionNonce: 9\nindex: a1\nisDeleted: true\n")

	var e elements.Element
	require.NoError(t, yaml.Unmarshal(in, &e))
	assert.Equal(t, "t1", e.ID)
	assert.Equal(t, 2, e.Version)
	assert.True(t, e.Deleted)
	assert.Equal(t, "text", e.Data["type"])
	assert.Equal(t, "hello", e.Data["text"])
	assert.EqualValues(t, 5, e.Data["x"])
	assert.NotContains(t, e.Data, "isDeleted")

	out, err := yaml.Marshal(e)
	require.NoError(t, err)

	var back elements.Element
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, e, back)
}
