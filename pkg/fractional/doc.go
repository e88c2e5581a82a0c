// Package fractional provides order keys (fractional indices) for element
// sequences. Keys are base-62 strings produced by roci.dev/fracdex; any two
// distinct keys leave room for a new key between them, so inserting an
// element never renumbers its siblings.
//
// Replicas generate keys independently, so two peers can pick the same key
// for different elements or ship keys the library does not accept. Repair
// fixes such sequences deterministically while keeping their order.
package fractional
