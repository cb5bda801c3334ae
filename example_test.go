package seqgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/seqgo"
	"github.com/hupe1980/seqgo/sequence"
)

func ExampleSearch() {
	txs := sequence.FromItems([][]string{
		{"bread", "milk"},
		{"bread", "diaper", "beer", "eggs"},
		{"milk", "diaper", "beer", "coke"},
		{"bread", "milk", "diaper", "beer"},
	})

	levels, err := seqgo.Search(context.Background(), txs, 0.75)
	if err != nil {
		panic(err)
	}

	for k, level := range levels {
		for _, p := range level {
			fmt.Println(k+1, p.Items(), p.Support)
		}
	}
	// Output:
	// 1 [bread] 3
	// 1 [milk] 3
	// 1 [diaper] 3
	// 1 [beer] 3
	// 2 [diaper beer] 3
}

func ExampleMiner_Search_temporal() {
	txs := sequence.FromTimedItems([][]sequence.TimedItem[string]{
		{{Item: "login", Time: 0}, {Item: "browse", Time: 4}, {Item: "buy", Time: 30}},
		{{Item: "login", Time: 0}, {Item: "browse", Time: 2}, {Item: "buy", Time: 50}},
	})

	miner, err := seqgo.New(txs,
		seqgo.WithConstraints[string](sequence.Constraints{}.WithMaxGap(10)),
	)
	if err != nil {
		panic(err)
	}

	levels, err := miner.Search(context.Background(), 1)
	if err != nil {
		panic(err)
	}

	last := levels[len(levels)-1]
	for _, p := range last {
		fmt.Println(p.Items(), p.Support)
	}
	// Output:
	// [login browse] 2
}
