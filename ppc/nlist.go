package ppc

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// Occurrence is one tree node carrying an item (or, for larger itemsets, the
// ancestor node standing in for a joint occurrence).
type Occurrence struct {
	Count int
	Position
}

func (o Occurrence) String() string {
	return fmt.Sprintf("<(%d, %d): %d>", o.Pre, o.Post, o.Count)
}

// NList is a list of occurrences ordered by pre-order number.
type NList []Occurrence

func (l NList) Support() int {
	sum := 0
	for _, o := range l {
		sum += o.Count
	}
	return sum
}

func (l NList) Sort() {
	sort.Slice(l, func(i, j int) bool { return l[i].Pre < l[j].Pre })
}

func (l NList) String() string {
	parts := make([]string, 0, len(l))
	for _, o := range l {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, "\n")
}

// Index maps every frequent item to the N-list of its tree nodes.
type Index map[itemset.Item]NList

// BuildIndex collects the occurrences of each item in one traversal of t.
func BuildIndex(t *Tree) Index {
	idx := make(Index, t.Frequent.Len())
	t.Walk(func(n *Node) error {
		if n.IsRoot() {
			return nil
		}
		idx[n.Item] = append(idx[n.Item], Occurrence{Count: n.Count, Position: n.Position})
		return nil
	})
	for _, l := range idx {
		l.Sort()
	}
	return idx
}
