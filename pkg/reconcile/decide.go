package reconcile

import "github.com/OP439/excalidraw/pkg/elements"

// Decision is the outcome of resolving a local and a remote candidate.
type Decision int

const (
	// KeepRemote replaces the local element with the remote one.
	KeepRemote Decision = iota
	// KeepLocal discards the remote element.
	KeepLocal
)

// String returns the string representation of a decision.
func (d Decision) String() string {
	if d == KeepLocal {
		return "keep-local"
	}
	return "keep-remote"
}

// Reason names the rule that produced a Decision.
type Reason string

// Rules, in evaluation order.
const (
	ReasonRemoteOnly    Reason = "remote-only"
	ReasonInteraction   Reason = "interaction"
	ReasonNewerLocal    Reason = "newer-local"
	ReasonNonceTiebreak Reason = "nonce-tiebreak"
	ReasonRemoteWins    Reason = "remote-wins"
)

// Reasons lists every Reason in evaluation order.
var Reasons = []Reason{
	ReasonRemoteOnly,
	ReasonInteraction,
	ReasonNewerLocal,
	ReasonNonceTiebreak,
	ReasonRemoteWins,
}

// String returns the string representation of a reason.
func (r Reason) String() string {
	return string(r)
}

// Decide reports whether local or remote wins for their shared id.
// A nil local always yields KeepRemote.
func Decide(local *elements.Element, remote elements.Element, state elements.InteractionState) Decision {
	d, _ := Explain(local, remote, state)
	return d
}

// Explain is Decide plus the rule that fired.
func Explain(local *elements.Element, remote elements.Element, state elements.InteractionState) (Decision, Reason) {
	switch {
	case local == nil:
		return KeepRemote, ReasonRemoteOnly
	case state.Protects(local.ID):
		return KeepLocal, ReasonInteraction
	case local.Version > remote.Version:
		return KeepLocal, ReasonNewerLocal
	case local.Version == remote.Version && local.VersionNonce < remote.VersionNonce:
		// Every replica evaluates the same pair the same way, so the
		// lower nonce wins everywhere.
		return KeepLocal, ReasonNonceTiebreak
	default:
		return KeepRemote, ReasonRemoteWins
	}
}
