package reconcile

import (
	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/fractional"
)

// Normalize orders merged by order key. Keys are validated on merged as
// given; when they do not validate the sorted sequence is repaired instead
// of failing. repaired reports whether the repair path ran.
func Normalize(order fractional.Order, merged []elements.Element) (ordered []elements.Element, repaired bool) {
	ordered, repaired, _ = normalize(order, merged)
	return ordered, repaired
}

// normalize is Normalize plus the ids whose key the repair rewrote.
func normalize(order fractional.Order, merged []elements.Element) ([]elements.Element, bool, []string) {
	valid := order.Validate(merged)
	sorted := order.Sort(merged)
	if valid {
		return sorted, false, nil
	}

	repaired := order.Repair(sorted)
	var rewritten []string
	for i := range repaired {
		if i < len(sorted) && repaired[i].Index != sorted[i].Index {
			rewritten = append(rewritten, repaired[i].ID)
		}
	}
	return repaired, true, rewritten
}
