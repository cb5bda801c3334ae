package sequence

// Event is a single item occurrence inside an itemset. Time is only
// meaningful when the owning transaction reports Timed() == true; for
// untimed transactions it is zero and ignored by all matching code.
type Event[I comparable] struct {
	Item I
	Time float64
}

// Itemset is a set of items considered co-occurring at one time step.
// Events in one itemset share the same time step, so the itemset's
// timestamp is the timestamp of its first event.
type Itemset[I comparable] []Event[I]

// Time returns the timestamp of the itemset.
func (s Itemset[I]) Time() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].Time
}

// Contains reports whether the itemset holds the given item.
func (s Itemset[I]) Contains(item I) bool {
	for _, ev := range s {
		if ev.Item == item {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every item of the pattern element is
// present in the itemset (itemset-subset semantics).
func (s Itemset[I]) ContainsAll(items []I) bool {
	for _, item := range items {
		if !s.Contains(item) {
			return false
		}
	}
	return true
}

// Transaction is one ordered sequence of itemsets. Position encodes the
// temporal/sequence order; timestamps, when present, refine it.
type Transaction[I comparable] struct {
	Itemsets []Itemset[I]

	// Timed reports whether the events carry meaningful timestamps.
	Timed bool
}

// Len returns the number of itemsets in the transaction.
func (t Transaction[I]) Len() int { return len(t.Itemsets) }

// ItemCount returns the total number of items summed across itemsets.
func (t Transaction[I]) ItemCount() int {
	n := 0
	for _, s := range t.Itemsets {
		n += len(s)
	}
	return n
}

// Pattern is an ordered sequence of itemsets proposed as a mining result.
// Unlike transactions, pattern elements carry no timestamps: a pattern
// constrains order and co-occurrence, not absolute time.
type Pattern[I comparable] struct {
	// Elements are the ordered itemsets of the pattern. Every element
	// must be non-empty.
	Elements [][]I

	// Support is the number of transactions containing the pattern.
	// Zero for candidates that have not been counted yet.
	Support int
}

// NewPattern builds an unsupported pattern from its elements.
func NewPattern[I comparable](elements ...[]I) Pattern[I] {
	return Pattern[I]{Elements: elements}
}

// Single builds a one-element, one-item pattern.
func Single[I comparable](item I) Pattern[I] {
	return Pattern[I]{Elements: [][]I{{item}}}
}

// ItemCount returns the total number of items summed across elements.
// Level k of a search holds exactly the patterns with ItemCount k.
func (p Pattern[I]) ItemCount() int {
	n := 0
	for _, e := range p.Elements {
		n += len(e)
	}
	return n
}

// Items returns the pattern's items flattened in element order.
func (p Pattern[I]) Items() []I {
	out := make([]I, 0, p.ItemCount())
	for _, e := range p.Elements {
		out = append(out, e...)
	}
	return out
}

// WithSupport returns a copy of the pattern with the support count set.
func (p Pattern[I]) WithSupport(support int) Pattern[I] {
	return Pattern[I]{Elements: p.Elements, Support: support}
}

// Level is the ordered set of frequent patterns discovered at one
// item-count level. Order follows candidate-generation order, which makes
// results reproducible across runs and backends.
type Level[I comparable] []Pattern[I]

// Lookup returns the pattern with the given canonical key, if present.
func (l Level[I]) Lookup(key string) (Pattern[I], bool) {
	for _, p := range l {
		if Key(p) == key {
			return p, true
		}
	}
	return Pattern[I]{}, false
}

// MaxItemCount returns the item count of the largest transaction, which
// bounds the deepest level a search can reach.
func MaxItemCount[I comparable](txs []Transaction[I]) int {
	max := 0
	for _, t := range txs {
		if n := t.ItemCount(); n > max {
			max = n
		}
	}
	return max
}
