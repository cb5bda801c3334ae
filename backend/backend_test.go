package backend

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seqgo/sequence"
)

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{Auto, Reference, Accelerated, GPU} {
		got, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Auto, got)

	_, err = ParseMode("fpga")
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	var none sequence.Constraints

	t.Run("auto prefers accelerated", func(t *testing.T) {
		counter, err := Select(Auto, none, Options[string]{})
		require.NoError(t, err)
		assert.Equal(t, "accelerated", counter.Name())
	})

	t.Run("forced reference", func(t *testing.T) {
		counter, err := Select(Reference, none, Options[string]{})
		require.NoError(t, err)
		assert.Equal(t, "reference", counter.Name())
	})

	t.Run("forced gpu without counter fails", func(t *testing.T) {
		_, err := Select(GPU, none, Options[string]{})
		require.Error(t, err)

		var uerr *UnavailableError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "gpu", uerr.Backend)
	})

	t.Run("forced gpu with registered counter", func(t *testing.T) {
		gpu := NewReference[string](nil)
		counter, err := Select(GPU, none, Options[string]{GPU: gpu})
		require.NoError(t, err)
		assert.Same(t, gpu, counter)
	})
}

func TestCountMalformedCandidate(t *testing.T) {
	txs := sequence.FromItems([][]string{{"a"}, {"a"}})
	candidates := []sequence.Pattern[string]{
		sequence.Single("a"),
		{Elements: [][]string{{}}},
	}

	for _, counter := range []Counter[string]{
		NewReference[string](nil),
		NewAccelerated[string](2, 1, nil),
	} {
		t.Run(counter.Name(), func(t *testing.T) {
			_, err := counter.Count(context.Background(), candidates, txs, sequence.Constraints{})
			require.Error(t, err)

			var merr *MatchError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, 1, merr.CandidateIndex)
		})
	}
}

func TestCountCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	txs := sequence.FromItems([][]string{{"a"}, {"a"}})
	candidates := []sequence.Pattern[string]{sequence.Single("a")}

	for _, counter := range []Counter[string]{
		NewReference[string](nil),
		NewAccelerated[string](2, 1, nil),
	} {
		t.Run(counter.Name(), func(t *testing.T) {
			_, err := counter.Count(ctx, candidates, txs, sequence.Constraints{})
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestCountProgressReachesTotal(t *testing.T) {
	txs := sequence.FromItems([][]string{{"a", "b"}, {"b", "c"}})
	candidates := []sequence.Pattern[string]{
		sequence.Single("a"),
		sequence.Single("b"),
		sequence.Single("c"),
	}

	t.Run("reference", func(t *testing.T) {
		final := 0
		counter := NewReference[string](func(done, total int) {
			if done == total {
				final = done
			}
		})
		_, err := counter.Count(context.Background(), candidates, txs, sequence.Constraints{})
		require.NoError(t, err)
		assert.Equal(t, len(candidates), final)
	})
}

func randomTransactions(r *rand.Rand, n int) []sequence.Transaction[string] {
	items := []string{"a", "b", "c", "d", "e"}
	txs := make([]sequence.Transaction[string], n)
	for i := range txs {
		sets := make([]sequence.Itemset[string], 1+r.Intn(6))
		time := 0.0
		for j := range sets {
			time += float64(1 + r.Intn(5))
			set := sequence.Itemset[string]{}
			for _, item := range items {
				if r.Intn(3) == 0 {
					set = append(set, sequence.Event[string]{Item: item, Time: time})
				}
			}
			if len(set) == 0 {
				set = append(set, sequence.Event[string]{Item: items[r.Intn(len(items))], Time: time})
			}
			sets[j] = set
		}
		txs[i] = sequence.Transaction[string]{Itemsets: sets, Timed: true}
	}
	return txs
}

func TestBackendEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	txs := randomTransactions(r, 50)

	candidates := []sequence.Pattern[string]{
		sequence.Single("a"),
		sequence.Single("z"), // absent everywhere
		sequence.NewPattern([]string{"a"}, []string{"b"}),
		sequence.NewPattern([]string{"a", "b"}),
		sequence.NewPattern([]string{"b"}, []string{"c"}, []string{"d"}),
		sequence.NewPattern([]string{"a", "c"}, []string{"e"}),
		{}, // empty pattern matches everything
	}

	constraints := []sequence.Constraints{
		{},
		sequence.Constraints{}.WithMaxGap(4),
		sequence.Constraints{}.WithMinGap(2).WithMaxSpan(9),
	}

	for ci, c := range constraints {
		t.Run(fmt.Sprintf("constraints_%d", ci), func(t *testing.T) {
			ref, err := NewReference[string](nil).Count(context.Background(), candidates, txs, c)
			require.NoError(t, err)

			acc, err := NewAccelerated[string](4, 2, nil).Count(context.Background(), candidates, txs, c)
			require.NoError(t, err)

			assert.Equal(t, ref, acc)
			assert.Equal(t, len(txs), ref.Total)
			assert.Equal(t, 0, ref.Counts[1])
			assert.Equal(t, len(txs), ref.Counts[len(candidates)-1])
		})
	}
}

func TestCountDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	txs := randomTransactions(r, 30)
	candidates := []sequence.Pattern[string]{
		sequence.Single("a"),
		sequence.NewPattern([]string{"b"}, []string{"c"}),
		sequence.NewPattern([]string{"a", "d"}),
	}

	counter := NewAccelerated[string](8, 1, nil)
	first, err := counter.Count(context.Background(), candidates, txs, sequence.Constraints{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := counter.Count(context.Background(), candidates, txs, sequence.Constraints{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
