package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical keys give patterns a stable identity usable as a map key.
// Items within an element are rendered and sorted, so keys are invariant
// under item order inside an itemset; elements keep their order. The
// separators are non-printable so item renderings cannot collide with
// the key structure for any sane item type.
const (
	itemSep    = "\x1f" // between items of one element
	elementSep = "\x1e" // between elements
)

// Key returns the canonical key of a pattern. Patterns are structurally
// equal iff their keys are equal.
func Key[I comparable](p Pattern[I]) string {
	var b strings.Builder
	for i, e := range p.Elements {
		if i > 0 {
			b.WriteString(elementSep)
		}
		b.WriteString(elementKey(e))
	}
	return b.String()
}

// ElementKey returns the canonical key of a single pattern element.
func ElementKey[I comparable](element []I) string {
	return elementKey(element)
}

func elementKey[I comparable](element []I) string {
	rendered := make([]string, len(element))
	for i, item := range element {
		rendered[i] = fmt.Sprint(item)
	}
	sort.Strings(rendered)
	return strings.Join(rendered, itemSep)
}

// SortElement returns a copy of the element with items in canonical
// (rendered) order. Candidate generation keeps elements canonical so
// that drop-first/drop-last joins line up structurally.
func SortElement[I comparable](element []I) []I {
	out := make([]I, len(element))
	copy(out, element)
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})
	return out
}
