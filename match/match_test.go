package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/seqgo/sequence"
)

func flat(items ...string) sequence.Transaction[string] {
	return sequence.FromItems([][]string{items})[0]
}

func timed(items ...sequence.TimedItem[string]) sequence.Transaction[string] {
	return sequence.FromTimedItems([][]sequence.TimedItem[string]{items})[0]
}

func at(item string, t float64) sequence.TimedItem[string] {
	return sequence.TimedItem[string]{Item: item, Time: t}
}

func TestContains(t *testing.T) {
	var none sequence.Constraints

	t.Run("ordered non-contiguous subsequence", func(t *testing.T) {
		tx := flat("a", "x", "b", "y", "c")
		assert.True(t, Contains(tx, sequence.NewPattern([]string{"a"}, []string{"b"}, []string{"c"}), none))
		assert.True(t, Contains(tx, sequence.NewPattern([]string{"x"}, []string{"y"}), none))
	})

	t.Run("order is enforced", func(t *testing.T) {
		tx := flat("a", "b")
		assert.False(t, Contains(tx, sequence.NewPattern([]string{"b"}, []string{"a"}), none))
	})

	t.Run("each element needs its own itemset", func(t *testing.T) {
		tx := flat("a")
		assert.False(t, Contains(tx, sequence.NewPattern([]string{"a"}, []string{"a"}), none))
	})

	t.Run("empty pattern matches everything", func(t *testing.T) {
		assert.True(t, Contains(flat("a"), sequence.Pattern[string]{}, none))
	})

	t.Run("larger pattern than transaction", func(t *testing.T) {
		tx := flat("a", "b")
		p := sequence.NewPattern([]string{"a"}, []string{"b"}, []string{"c"})
		assert.False(t, Contains(tx, p, none))
	})
}

func TestContainsItemsetSubset(t *testing.T) {
	var none sequence.Constraints

	tx := sequence.FromItemsets([][][]string{
		{{"a", "b", "c"}, {"d"}},
	})[0]

	t.Run("element is a subset of one itemset", func(t *testing.T) {
		assert.True(t, Contains(tx, sequence.NewPattern([]string{"a", "c"}), none))
		assert.True(t, Contains(tx, sequence.NewPattern([]string{"b"}, []string{"d"}), none))
	})

	t.Run("co-occurrence cannot span itemsets", func(t *testing.T) {
		assert.False(t, Contains(tx, sequence.NewPattern([]string{"a", "d"}), none))
	})
}

func TestContainsTemporal(t *testing.T) {
	ab := sequence.NewPattern([]string{"A"}, []string{"B"})

	t.Run("maxgap", func(t *testing.T) {
		tx := timed(at("A", 0), at("B", 20))
		assert.False(t, Contains(tx, ab, sequence.Constraints{}.WithMaxGap(10)))
		assert.True(t, Contains(tx, ab, sequence.Constraints{}.WithMaxGap(25)))
	})

	t.Run("mingap", func(t *testing.T) {
		tx := timed(at("A", 0), at("B", 20))
		assert.False(t, Contains(tx, ab, sequence.Constraints{}.WithMinGap(30)))
		assert.True(t, Contains(tx, ab, sequence.Constraints{}.WithMinGap(20)))
	})

	t.Run("maxspan over first and last", func(t *testing.T) {
		tx := timed(at("A", 0), at("B", 5), at("C", 12))
		p := sequence.NewPattern([]string{"A"}, []string{"B"}, []string{"C"})
		assert.False(t, Contains(tx, p, sequence.Constraints{}.WithMaxSpan(10)))
		assert.True(t, Contains(tx, p, sequence.Constraints{}.WithMaxSpan(12)))
	})

	t.Run("gaps are between matched itemsets only", func(t *testing.T) {
		// x at 10 is skipped; the A->B gap is 20, not 10.
		tx := timed(at("A", 0), at("x", 10), at("B", 20))
		assert.False(t, Contains(tx, ab, sequence.Constraints{}.WithMaxGap(15)))
	})

	t.Run("untimed transaction ignores constraints", func(t *testing.T) {
		tx := flat("A", "B")
		assert.True(t, Contains(tx, ab, sequence.Constraints{}.WithMaxGap(0.001)))
	})
}

func TestContainsBacktracks(t *testing.T) {
	// The earliest A (t=0) leaves a 20-unit gap to B and fails
	// maxgap=10; the later A (t=15) satisfies it. A greedy matcher
	// would answer false here.
	tx := timed(at("A", 0), at("A", 15), at("B", 20))
	p := sequence.NewPattern([]string{"A"}, []string{"B"})

	assert.True(t, Contains(tx, p, sequence.Constraints{}.WithMaxGap(10)))
}

func TestContainsBacktracksOverSpan(t *testing.T) {
	// Starting at the first A blows the span; the match must restart
	// at the second A.
	tx := timed(at("A", 0), at("A", 100), at("B", 105))
	p := sequence.NewPattern([]string{"A"}, []string{"B"})

	assert.True(t, Contains(tx, p, sequence.Constraints{}.WithMaxSpan(10)))
}
