// Package sequence defines the value types the mining engine operates on:
// events, itemsets, transactions, patterns and temporal constraints.
//
// All types are plain value data. Once a transaction collection has been
// handed to a Miner it is treated as immutable, which is what allows the
// counting backends to fan out across goroutines without locking.
package sequence
