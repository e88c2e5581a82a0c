package reconcile_test

import (
	"github.com/OP439/excalidraw/pkg/elements"
)

func elem(id string, version, nonce int, key string) elements.Element {
	return elements.Element{ID: id, Version: version, VersionNonce: nonce, Index: key}
}

func ptr(e elements.Element) *elements.Element {
	return &e
}

func idSet(seq []elements.Element) map[string]struct{} {
	set := make(map[string]struct{}, len(seq))
	for _, e := range seq {
		set[e.ID] = struct{}{}
	}
	return set
}

func find(seq []elements.Element, id string) (elements.Element, bool) {
	for _, e := range seq {
		if e.ID == id {
			return e, true
		}
	}
	return elements.Element{}, false
}
