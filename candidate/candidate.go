// Package candidate produces the level k+1 candidate patterns from the
// frequent patterns of level k via the GSP join, followed by
// anti-monotone structural pruning and structural deduplication.
package candidate

import (
	"github.com/hupe1980/seqgo/sequence"
)

// Singletons returns one single-item, single-element candidate per
// distinct item observed across all transactions, in first-observed
// order. This seeds level 1 of a search.
func Singletons[I comparable](txs []sequence.Transaction[I]) []sequence.Pattern[I] {
	seen := make(map[I]struct{})
	var out []sequence.Pattern[I]
	for _, tx := range txs {
		for _, set := range tx.Itemsets {
			for _, ev := range set {
				if _, ok := seen[ev.Item]; ok {
					continue
				}
				seen[ev.Item] = struct{}{}
				out = append(out, sequence.Single(ev.Item))
			}
		}
	}
	return out
}

// Generate joins every ordered pair of level-k frequent patterns whose
// structures overlap (dropping the first item of one equals dropping the
// last item of the other) and prunes candidates with an infrequent k-item
// subpattern. The result is deduplicated by canonical key and preserves
// generation order.
func Generate[I comparable](prev sequence.Level[I]) []sequence.Pattern[I] {
	if len(prev) == 0 {
		return nil
	}

	frequent := make(map[string]struct{}, len(prev))
	for _, p := range prev {
		frequent[sequence.Key(p)] = struct{}{}
	}

	dropFirstKeys := make([]string, len(prev))
	dropLastKeys := make([]string, len(prev))
	for i, p := range prev {
		dropFirstKeys[i] = sequence.Key(dropFirst(p))
		dropLastKeys[i] = sequence.Key(dropLast(p))
	}

	seen := make(map[string]struct{})
	var out []sequence.Pattern[I]
	for i, a := range prev {
		for j, b := range prev {
			if dropFirstKeys[i] != dropLastKeys[j] {
				continue
			}
			joined := join(a, b)
			key := sequence.Key(joined)
			if _, dup := seen[key]; dup {
				continue
			}
			if hasInfrequentSubpattern(joined, frequent) {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, joined)
		}
	}
	return out
}

// join extends a with the last item of b: appended as a new trailing
// element when that item stood alone in b's last element, merged into
// a's last element otherwise.
func join[I comparable](a, b sequence.Pattern[I]) sequence.Pattern[I] {
	last := b.Elements[len(b.Elements)-1]
	lastItem := canonicalLastItem(last)

	elements := make([][]I, len(a.Elements))
	for i, e := range a.Elements {
		elements[i] = sequence.SortElement(e)
	}

	if len(last) == 1 {
		elements = append(elements, []I{lastItem})
	} else {
		tail := elements[len(elements)-1]
		merged := make([]I, len(tail), len(tail)+1)
		copy(merged, tail)
		merged = append(merged, lastItem)
		elements[len(elements)-1] = sequence.SortElement(merged)
	}
	return sequence.Pattern[I]{Elements: elements}
}

// dropFirst removes the canonically-first item of the first element,
// dropping the element when it empties.
func dropFirst[I comparable](p sequence.Pattern[I]) sequence.Pattern[I] {
	elements := make([][]I, 0, len(p.Elements))
	head := sequence.SortElement(p.Elements[0])
	if len(head) > 1 {
		elements = append(elements, head[1:])
	}
	for _, e := range p.Elements[1:] {
		elements = append(elements, sequence.SortElement(e))
	}
	return sequence.Pattern[I]{Elements: elements}
}

// dropLast removes the canonically-last item of the last element,
// dropping the element when it empties.
func dropLast[I comparable](p sequence.Pattern[I]) sequence.Pattern[I] {
	n := len(p.Elements)
	elements := make([][]I, 0, n)
	for _, e := range p.Elements[:n-1] {
		elements = append(elements, sequence.SortElement(e))
	}
	tail := sequence.SortElement(p.Elements[n-1])
	if len(tail) > 1 {
		elements = append(elements, tail[:len(tail)-1])
	}
	return sequence.Pattern[I]{Elements: elements}
}

func canonicalLastItem[I comparable](element []I) I {
	sorted := sequence.SortElement(element)
	return sorted[len(sorted)-1]
}

// hasInfrequentSubpattern reports whether some subpattern obtained by
// deleting a single item is absent from the frequent set. Such a
// candidate is provably infrequent (anti-monotonicity) and is discarded
// without counting.
func hasInfrequentSubpattern[I comparable](p sequence.Pattern[I], frequent map[string]struct{}) bool {
	for ei, element := range p.Elements {
		for ii := range element {
			sub := deleteItem(p, ei, ii)
			if _, ok := frequent[sequence.Key(sub)]; !ok {
				return true
			}
		}
	}
	return false
}

func deleteItem[I comparable](p sequence.Pattern[I], ei, ii int) sequence.Pattern[I] {
	elements := make([][]I, 0, len(p.Elements))
	for i, e := range p.Elements {
		if i != ei {
			elements = append(elements, e)
			continue
		}
		if len(e) == 1 {
			continue
		}
		trimmed := make([]I, 0, len(e)-1)
		trimmed = append(trimmed, e[:ii]...)
		trimmed = append(trimmed, e[ii+1:]...)
		elements = append(elements, trimmed)
	}
	return sequence.Pattern[I]{Elements: elements}
}
