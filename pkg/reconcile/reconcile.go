package reconcile

import (
	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/fractional"
)

// Reconcile merges one remote batch into the local replica using the
// default fracdex order keys.
func Reconcile(local, remote []elements.Element, state elements.InteractionState) Reconciled {
	return ReconcileWith(fractional.New(), local, remote, state)
}

// ReconcileWith is Reconcile with a caller supplied Order.
func ReconcileWith(order fractional.Order, local, remote []elements.Element, state elements.InteractionState) Reconciled {
	merged := Merge(local, remote, state)
	ordered, _ := Normalize(order, merged)
	return seal(ordered)
}
