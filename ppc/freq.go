package ppc

import (
	"fmt"
	"math"
	"sort"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// InvalidThreshold is returned when a support fraction is outside (0, 1].
type InvalidThreshold struct {
	Fraction float64
}

func (e *InvalidThreshold) Error() string {
	return fmt.Sprintf("minimum support %v is outside of (0, 1]", e.Fraction)
}

// MinSupportCount converts a support fraction into a transaction count,
// rounding up.
func MinSupportCount(fraction float64, transactions int) (int, error) {
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return 0, &InvalidThreshold{Fraction: fraction}
	}
	return int(math.Ceil(fraction * float64(transactions))), nil
}

// FrequentItems is the list of items at or above the support threshold in
// mining order: count descending, then universe position ascending.
type FrequentItems struct {
	Items      []itemset.Item
	Counts     map[itemset.Item]int
	MinSupport int
	rank       map[itemset.Item]int
}

// Frequent counts in how many transactions each item occurs and keeps the
// items reaching minSupport.
func Frequent(txs []itemset.Transaction, minSupport int) *FrequentItems {
	counts := make(map[itemset.Item]int)
	for _, tx := range txs {
		for _, item := range itemset.NewTransaction(tx) {
			counts[item]++
		}
	}
	items := make([]itemset.Item, 0, len(counts))
	for item, count := range counts {
		if count >= minSupport {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a < b
	})
	f := &FrequentItems{
		Items:      items,
		Counts:     make(map[itemset.Item]int, len(items)),
		MinSupport: minSupport,
		rank:       make(map[itemset.Item]int, len(items)),
	}
	for i, item := range items {
		f.Counts[item] = counts[item]
		f.rank[item] = i
	}
	return f
}

func (f *FrequentItems) Len() int {
	return len(f.Items)
}

func (f *FrequentItems) Empty() bool {
	return len(f.Items) == 0
}

// Rank gives the mining order position of item, or false if it is not
// frequent.
func (f *FrequentItems) Rank(item itemset.Item) (int, bool) {
	r, has := f.rank[item]
	return r, has
}

// Project restricts tx to the frequent items and orders them by rank.
func (f *FrequentItems) Project(tx itemset.Transaction) []itemset.Item {
	projected := make([]itemset.Item, 0, len(tx))
	for _, item := range itemset.NewTransaction(tx) {
		if _, has := f.rank[item]; has {
			projected = append(projected, item)
		}
	}
	sort.Slice(projected, func(i, j int) bool {
		return f.rank[projected[i]] < f.rank[projected[j]]
	})
	return projected
}
