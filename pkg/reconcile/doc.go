// Package reconcile merges a local replica of a scene with one batch of
// remotely received elements into a single ordered, deduplicated replica.
//
// The pipeline has three stages:
//
//   - Decide picks the winner between a local and a remote candidate for the
//     same id. In-flight local interactions always win, then the higher
//     version, then the lower version nonce.
//   - Merge builds the union of both sides, resolving shared ids with Decide.
//     Remote batch order is kept, local-only elements follow.
//   - Normalize sorts the union by order key and repairs the keys when the
//     independently generated keys of two peers collide.
//
// Every peer that reconciles the same inputs reaches the same output, which
// is what lets replicas converge without a coordinator. Reconcile runs the
// whole pipeline and returns a Reconciled value; the Reconciler adds
// logging, statistics, change detection and metrics around it.
//
// Example:
//
//	merged := reconcile.Reconcile(local, remote, elements.InteractionState{EditingID: "text-1"})
//	for _, e := range merged.Elements() {
//	    render(e)
//	}
package reconcile
