package prepost

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// Options bound the growth of a mining run. Zero means unbounded.
type Options struct {
	// MaxK is the largest itemset size to grow.
	MaxK int
	// MaxCandidates limits the number of operand pairs joined over the
	// whole run.
	MaxCandidates int
}

// Mine finds every itemset of txs whose support is at least
// ceil(support * len(txs)).
//
// An empty database or a threshold no item reaches is not an error: the
// Result is empty and its Outcome says why.
func Mine(u *itemset.Universe, txs []itemset.Transaction, support float64, opts Options) (*Result, error) {
	minSupport, err := ppc.MinSupportCount(support, len(txs))
	if err != nil {
		return nil, err
	}
	r := &Result{
		Universe:     u,
		Transactions: len(txs),
		MinSupport:   minSupport,
	}
	if len(txs) == 0 {
		errors.Logf("INFO", "no transactions to mine")
		r.Outcome = NoTransactions
		return r, nil
	}

	r.Frequent = ppc.Frequent(txs, minSupport)
	errors.Logf("DEBUG", "min support %v of %v transactions, %v frequent items", minSupport, len(txs), r.Frequent.Len())
	if r.Frequent.Empty() {
		errors.Logf("INFO", "no item reaches support %v", minSupport)
		r.Outcome = NoFrequentItems
		return r, nil
	}

	r.Tree = ppc.Build(r.Frequent, txs)
	r.Index = ppc.BuildIndex(r.Tree)
	errors.Logf("DEBUG", "ppc tree has %v nodes", r.Tree.Size())

	seed := newLevel(1)
	for _, item := range r.Frequent.Items {
		seed.add(ppc.NewPattern(itemset.New(item), r.Index[item]))
	}
	r.Levels = append(r.Levels, seed)

	m := &grower{minSupport: minSupport, opts: opts}
	for k := 2; k <= r.Frequent.Len(); k++ {
		if opts.MaxK > 0 && k > opts.MaxK {
			errors.Logf("WARN", "stopping before size %v itemsets, max-k is %v", k, opts.MaxK)
			r.Truncated = true
			break
		}
		next := m.grow(k, r.Levels[k-2])
		if next.Size() > 0 {
			r.Levels = append(r.Levels, next)
		}
		if m.truncated {
			errors.Logf("WARN", "stopped at size %v itemsets after %v candidates", k, m.candidates)
			r.Truncated = true
			break
		}
		if next.Size() == 0 {
			break
		}
		errors.Logf("DEBUG", "%v itemsets of size %v", next.Size(), k)
	}
	markMaximal(r.Levels)
	errors.Logf("INFO", "found %v frequent itemsets, largest has %v items", r.Count(), r.MaxK())
	return r, nil
}

// MineNames is Mine for callers holding item names rather than ids. Names
// not in universe are ignored.
func MineNames(universe []string, transactions [][]string, support float64, opts Options) (*Result, error) {
	u := itemset.NewUniverse(universe)
	txs := make([]itemset.Transaction, 0, len(transactions))
	for _, names := range transactions {
		tx, unknown := u.Transaction(names)
		if len(unknown) > 0 {
			errors.Logf("WARN", "ignoring unknown items %v", unknown)
		}
		txs = append(txs, tx)
	}
	return Mine(u, txs, support, opts)
}

type grower struct {
	minSupport int
	opts       Options
	candidates int
	truncated  bool
}

// grow joins every pair of prev, the earlier registered pattern being the
// first operand.
func (m *grower) grow(k int, prev *Level) *Level {
	next := newLevel(k)
	pats := prev.Patterns()
	combinations(len(pats), 2, func(pair []int) bool {
		if m.opts.MaxCandidates > 0 && m.candidates >= m.opts.MaxCandidates {
			m.truncated = true
			return false
		}
		m.candidates++
		a, b := pats[pair[0]], pats[pair[1]]
		items := a.Items.Union(b.Items)
		if items.Size() != k || next.Has(items) {
			return true
		}
		merged := merge(a.NList, b.NList)
		if len(merged) == 0 || merged.Support() < m.minSupport {
			return true
		}
		merged.Sort()
		next.add(ppc.NewPattern(items, merged))
		return true
	})
	return next
}

// merge sums, for each occurrence of a, the counts of the occurrences of b
// below it. Both lists are in pre-order so the descendants of x in b form a
// run starting after x.Pre and ending at the first occurrence with a larger
// post number.
func merge(a, b ppc.NList) ppc.NList {
	merged := make(ppc.NList, 0, len(a))
	start := 0
	for _, x := range a {
		for start < len(b) && b[start].Pre <= x.Pre {
			start++
		}
		sum := 0
		for _, y := range b[start:] {
			if y.Post > x.Post {
				break
			}
			if x.Ancestor(y.Position) {
				sum += y.Count
			}
		}
		if sum > 0 {
			merged = append(merged, ppc.Occurrence{Count: sum, Position: x.Position})
		}
	}
	return merged
}

// markMaximal flags the patterns no pattern of the next level contains.
func markMaximal(levels []*Level) {
	for i, l := range levels {
		for _, p := range l.Patterns() {
			p.SetMaximal(true)
		}
		if i == 0 {
			continue
		}
		prev := levels[i-1]
		for _, p := range l.Patterns() {
			items := p.Items.Items()
			for skip := range items {
				sub := make([]itemset.Item, 0, len(items)-1)
				sub = append(sub, items[:skip]...)
				sub = append(sub, items[skip+1:]...)
				if q, has := prev.Get(itemset.New(sub...)); has {
					q.SetMaximal(false)
				}
			}
		}
	}
}
