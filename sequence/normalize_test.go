package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromItems(t *testing.T) {
	txs := FromItems([][]string{{"a", "b"}, {"c"}})

	require.Len(t, txs, 2)
	assert.False(t, txs[0].Timed)
	assert.Equal(t, 2, txs[0].Len())
	assert.True(t, txs[0].Itemsets[0].Contains("a"))
	assert.True(t, txs[0].Itemsets[1].Contains("b"))
}

func TestFromTimedItems(t *testing.T) {
	txs := FromTimedItems([][]TimedItem[string]{
		{{Item: "a", Time: 0}, {Item: "b", Time: 20}},
	})

	require.Len(t, txs, 1)
	assert.True(t, txs[0].Timed)
	assert.Equal(t, 20.0, txs[0].Itemsets[1].Time())
}

func TestFromItemsets(t *testing.T) {
	txs := FromItemsets([][][]string{
		{{"a", "b"}, {"c"}},
	})

	require.Len(t, txs, 1)
	assert.False(t, txs[0].Timed)
	assert.True(t, txs[0].Itemsets[0].ContainsAll([]string{"a", "b"}))
	assert.Equal(t, 3, txs[0].ItemCount())
}

func TestFromTimedItemsets(t *testing.T) {
	txs := FromTimedItemsets([][][]TimedItem[string]{
		{
			{{Item: "a", Time: 1}, {Item: "b", Time: 1}},
			{{Item: "c", Time: 4}},
		},
	})

	require.Len(t, txs, 1)
	assert.True(t, txs[0].Timed)
	assert.Equal(t, 1.0, txs[0].Itemsets[0].Time())
	assert.Equal(t, 4.0, txs[0].Itemsets[1].Time())
}

func TestAnyTimed(t *testing.T) {
	untimed := FromItems([][]string{{"a"}, {"b"}})
	assert.False(t, AnyTimed(untimed))

	mixed := append(untimed, FromTimedItems([][]TimedItem[string]{{{Item: "c", Time: 1}}})...)
	assert.True(t, AnyTimed(mixed))
}
