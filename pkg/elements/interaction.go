package elements

// InteractionState is the local, transient view of what the user is
// currently manipulating. An empty ID means no element is targeted.
type InteractionState struct {
	EditingID  string `json:"editingId,omitempty" yaml:"editingId,omitempty"`
	ResizingID string `json:"resizingId,omitempty" yaml:"resizingId,omitempty"`
	DraggingID string `json:"draggingId,omitempty" yaml:"draggingId,omitempty"`
}

// Protects reports whether id is the target of an in-flight local
// interaction. The empty id is never protected.
func (s InteractionState) Protects(id string) bool {
	if id == "" {
		return false
	}
	return id == s.EditingID || id == s.ResizingID || id == s.DraggingID
}

// IsIdle reports whether no element is being manipulated.
func (s InteractionState) IsIdle() bool {
	return s.EditingID == "" && s.ResizingID == "" && s.DraggingID == ""
}
