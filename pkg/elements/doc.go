// Package elements defines the data model shared by every replica of a
// collaborative scene: the versioned Element, the local InteractionState
// that protects in-flight edits, and the ephemeral id Index used while
// reconciling.
//
// Elements are treated as immutable values. Functions in this module never
// mutate a slice they receive; they return new slices instead.
package elements
