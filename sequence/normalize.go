package sequence

// Construction helpers for the input shapes the miner accepts. Flat
// transactions are normalized into single-item itemsets so the matching
// and generation code only ever sees the itemset form.

// TimedItem pairs an item with its timestamp in flat timed input.
type TimedItem[I comparable] struct {
	Item I
	Time float64
}

// FromItems builds untimed transactions from flat item sequences; each
// item becomes its own single-item itemset.
func FromItems[I comparable](raw [][]I) []Transaction[I] {
	txs := make([]Transaction[I], len(raw))
	for i, items := range raw {
		sets := make([]Itemset[I], len(items))
		for j, item := range items {
			sets[j] = Itemset[I]{{Item: item}}
		}
		txs[i] = Transaction[I]{Itemsets: sets}
	}
	return txs
}

// FromTimedItems builds timed transactions from flat (item, timestamp)
// sequences; each item becomes its own single-item itemset.
func FromTimedItems[I comparable](raw [][]TimedItem[I]) []Transaction[I] {
	txs := make([]Transaction[I], len(raw))
	for i, items := range raw {
		sets := make([]Itemset[I], len(items))
		for j, it := range items {
			sets[j] = Itemset[I]{{Item: it.Item, Time: it.Time}}
		}
		txs[i] = Transaction[I]{Itemsets: sets, Timed: true}
	}
	return txs
}

// FromItemsets builds untimed transactions from explicit itemset input.
func FromItemsets[I comparable](raw [][][]I) []Transaction[I] {
	txs := make([]Transaction[I], len(raw))
	for i, tx := range raw {
		sets := make([]Itemset[I], len(tx))
		for j, itemset := range tx {
			events := make(Itemset[I], len(itemset))
			for k, item := range itemset {
				events[k] = Event[I]{Item: item}
			}
			sets[j] = events
		}
		txs[i] = Transaction[I]{Itemsets: sets}
	}
	return txs
}

// FromTimedItemsets builds timed transactions from itemsets of
// (item, timestamp) pairs. Items within one itemset co-occur, so they
// should share a timestamp; the itemset's first event defines it.
func FromTimedItemsets[I comparable](raw [][][]TimedItem[I]) []Transaction[I] {
	txs := make([]Transaction[I], len(raw))
	for i, tx := range raw {
		sets := make([]Itemset[I], len(tx))
		for j, itemset := range tx {
			events := make(Itemset[I], len(itemset))
			for k, it := range itemset {
				events[k] = Event[I]{Item: it.Item, Time: it.Time}
			}
			sets[j] = events
		}
		txs[i] = Transaction[I]{Itemsets: sets, Timed: true}
	}
	return txs
}

// AnyTimed reports whether at least one transaction carries timestamps.
func AnyTimed[I comparable](txs []Transaction[I]) bool {
	for _, t := range txs {
		if t.Timed {
			return true
		}
	}
	return false
}
