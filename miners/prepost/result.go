package prepost

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

type Outcome int

const (
	Mined Outcome = iota
	NoTransactions
	NoFrequentItems
)

func (o Outcome) String() string {
	switch o {
	case Mined:
		return "mined"
	case NoTransactions:
		return "no transactions"
	case NoFrequentItems:
		return "no frequent items"
	default:
		return "unknown outcome"
	}
}

// Level holds the patterns of one size in the order they were registered.
// That order decides which operand is first when the level is grown.
type Level struct {
	K        int
	patterns *linkedhashmap.Map
}

func newLevel(k int) *Level {
	return &Level{
		K:        k,
		patterns: linkedhashmap.New(),
	}
}

func (l *Level) Size() int {
	return l.patterns.Size()
}

func (l *Level) Has(items *itemset.Itemset) bool {
	_, has := l.patterns.Get(items.Key())
	return has
}

func (l *Level) Get(items *itemset.Itemset) (*ppc.Pattern, bool) {
	p, has := l.patterns.Get(items.Key())
	if !has {
		return nil, false
	}
	return p.(*ppc.Pattern), true
}

// add registers p unless an equal itemset is already present.
func (l *Level) add(p *ppc.Pattern) bool {
	if l.Has(p.Items) {
		return false
	}
	l.patterns.Put(p.Items.Key(), p)
	return true
}

func (l *Level) Patterns() []*ppc.Pattern {
	patterns := make([]*ppc.Pattern, 0, l.patterns.Size())
	it := l.patterns.Iterator()
	for it.Next() {
		patterns = append(patterns, it.Value().(*ppc.Pattern))
	}
	return patterns
}

// Result is everything a mining run produced: the intermediate structures
// (for renderers) and the frequent patterns grouped by size.
type Result struct {
	Outcome      Outcome
	Universe     *itemset.Universe
	Transactions int
	MinSupport   int
	Frequent     *ppc.FrequentItems
	Tree         *ppc.Tree
	Index        ppc.Index
	Levels       []*Level
	Truncated    bool
}

func (r *Result) Empty() bool {
	return r.Count() == 0
}

// Level returns the patterns with k items, nil if there are none.
func (r *Result) Level(k int) *Level {
	if k < 1 || k > len(r.Levels) {
		return nil
	}
	return r.Levels[k-1]
}

// MaxK is the size of the largest pattern found.
func (r *Result) MaxK() int {
	return len(r.Levels)
}

func (r *Result) Count() int {
	count := 0
	for _, l := range r.Levels {
		count += l.Size()
	}
	return count
}

// Patterns lists every pattern, smallest first and in registration order
// within a size.
func (r *Result) Patterns() []*ppc.Pattern {
	patterns := make([]*ppc.Pattern, 0, r.Count())
	for _, l := range r.Levels {
		patterns = append(patterns, l.Patterns()...)
	}
	return patterns
}

// Supports maps k -> itemset key -> support.
func (r *Result) Supports() map[int]map[string]int {
	supports := make(map[int]map[string]int, len(r.Levels))
	for _, l := range r.Levels {
		m := make(map[string]int, l.Size())
		for _, p := range l.Patterns() {
			m[p.Items.Key()] = p.Support()
		}
		supports[l.K] = m
	}
	return supports
}

// Table maps k -> "Milk, Bread" -> support, naming the items through u.
func (r *Result) Table(u *itemset.Universe) map[int]map[string]int {
	table := make(map[int]map[string]int, len(r.Levels))
	for _, l := range r.Levels {
		m := make(map[string]int, l.Size())
		for _, p := range l.Patterns() {
			m[p.Items.Format(u)] = p.Support()
		}
		table[l.K] = m
	}
	return table
}
