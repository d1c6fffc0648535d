package ppc

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

func transactions(u *itemset.Universe, raw [][]string) []itemset.Transaction {
	txs := make([]itemset.Transaction, 0, len(raw))
	for _, names := range raw {
		tx, _ := u.Transaction(names)
		txs = append(txs, tx)
	}
	return txs
}

func sample(t *assert.Assertions, support float64) (*itemset.Universe, []itemset.Transaction, *FrequentItems) {
	u := itemset.NewUniverse(itemset.SampleItems)
	txs := transactions(u, itemset.SampleTransactions)
	min, err := MinSupportCount(support, len(txs))
	t.Nil(err)
	return u, txs, Frequent(txs, min)
}

func item(u *itemset.Universe, name string) itemset.Item {
	i, has := u.Lookup(name)
	if !has {
		panic(name)
	}
	return i
}

func TestMinSupportCount(x *testing.T) {
	t := assert.New(x)
	c, err := MinSupportCount(0.5, 2)
	t.Nil(err)
	t.Equal(1, c)
	c, err = MinSupportCount(0.2, 7)
	t.Nil(err)
	t.Equal(2, c)
	c, err = MinSupportCount(1, 7)
	t.Nil(err)
	t.Equal(7, c)
	c, err = MinSupportCount(0.34, 3)
	t.Nil(err)
	t.Equal(2, c)
	for _, bad := range []float64{0, -0.1, 1.01} {
		_, err = MinSupportCount(bad, 10)
		_, ok := err.(*InvalidThreshold)
		t.True(ok, "%v should be rejected", bad)
	}
}

func TestFrequentOrder(x *testing.T) {
	t := assert.New(x)
	u, _, f := sample(t, 0.2)
	t.Equal(2, f.MinSupport)
	t.Equal([]itemset.Item{
		item(u, "Milk"), item(u, "Bread"), item(u, "Eggs"), item(u, "Rice"),
	}, f.Items)
	t.Equal(3, f.Counts[item(u, "Milk")])
	t.Equal(2, f.Counts[item(u, "Rice")])
	_, has := f.Rank(item(u, "Cheese"))
	t.False(has)
}

func TestFrequentTieBreakFollowsUniverse(x *testing.T) {
	t := assert.New(x)
	u := itemset.NewUniverse([]string{"b", "c", "a"})
	txs := transactions(u, [][]string{{"a"}, {"c"}, {"b"}, {"a", "c"}})
	f := Frequent(txs, 1)
	t.Equal([]itemset.Item{item(u, "c"), item(u, "a"), item(u, "b")}, f.Items)

	u = itemset.NewUniverse([]string{"a", "c", "b"})
	txs = transactions(u, [][]string{{"a"}, {"b"}, {"c"}})
	f = Frequent(txs, 1)
	t.Equal([]itemset.Item{item(u, "a"), item(u, "c"), item(u, "b")}, f.Items)
}

func TestFrequentCountsMembership(x *testing.T) {
	t := assert.New(x)
	txs := []itemset.Transaction{{0, 0, 1}, {0}}
	f := Frequent(txs, 2)
	t.Equal([]itemset.Item{0}, f.Items)
	t.Equal(2, f.Counts[0])
	t.Equal([]itemset.Item{0, 1}, Frequent(txs, 1).Project(itemset.Transaction{1, 0, 0}))
}

func TestFrequentNone(x *testing.T) {
	t := assert.New(x)
	_, _, f := sample(t, 0.9)
	t.True(f.Empty())
	tree := Build(f, nil)
	t.Equal(1, tree.Size())
	t.Equal(Position{0, 0}, tree.Root.Position)
}

func TestBuildSample(x *testing.T) {
	t := assert.New(x)
	u, txs, f := sample(t, 0.2)
	tree := Build(f, txs)
	t.Equal(8, tree.Size())
	t.Equal(Position{0, 7}, tree.Root.Position)

	labels := make([]string, 0, tree.Size())
	for _, n := range tree.Nodes() {
		labels = append(labels, n.Label(u))
	}
	t.Equal([]string{
		"<0;7>",
		"Milk(3) <1;3>",
		"Bread(2) <2;2>",
		"Eggs(1) <3;0>",
		"Rice(1) <4;1>",
		"Bread(1) <5;4>",
		"Eggs(1) <6;5>",
		"Rice(1) <7;6>",
	}, labels)
	t.Equal([]Edge{{0, 1}, {0, 5}, {0, 6}, {0, 7}, {1, 2}, {2, 3}, {2, 4}}, tree.Edges())

	milk := tree.Root.Children[0]
	t.Equal(tree.Root, milk.Parent)
	t.True(tree.Root.IsRoot())
	t.False(milk.IsRoot())
}

func TestBuildSharesPrefixes(x *testing.T) {
	t := assert.New(x)
	u := itemset.NewUniverse([]string{"Milk", "Bread", "Eggs"})
	txs := transactions(u, [][]string{{"Milk", "Bread", "Eggs"}, {"Bread", "Milk"}})
	tree := Build(Frequent(txs, 1), txs)
	t.Equal(4, tree.Size())
	milk := tree.Root.Children[0]
	t.Equal(2, milk.Count)
	t.Equal(2, milk.Children[0].Count)
	t.Equal(1, milk.Children[0].Children[0].Count)
}

func TestNumberingIsABijection(x *testing.T) {
	t := assert.New(x)
	_, txs, f := sample(t, 0.1)
	tree := Build(f, txs)
	pres := make(map[int]bool)
	posts := make(map[int]bool)
	for i, n := range tree.Nodes() {
		t.Equal(i, n.Pre)
		pres[n.Pre] = true
		posts[n.Post] = true
		t.True(n.Post >= 0 && n.Post < tree.Size())
	}
	t.Equal(tree.Size(), len(pres))
	t.Equal(tree.Size(), len(posts))
	t.Equal(tree.Size()-1, tree.Root.Post)
}

func TestAncestorTest(x *testing.T) {
	t := assert.New(x)
	_, txs, f := sample(t, 0.1)
	tree := Build(f, txs)
	nodes := tree.Nodes()
	isAncestor := func(a, b *Node) bool {
		for p := b.Parent; p != nil; p = p.Parent {
			if p == a {
				return true
			}
		}
		return false
	}
	for _, a := range nodes {
		t.False(a.Ancestor(a.Position), "%v is its own ancestor", a)
		for _, b := range nodes {
			t.Equal(isAncestor(a, b), a.Ancestor(b.Position), "%v %v", a, b)
			if a.Ancestor(b.Position) {
				t.False(b.Ancestor(a.Position), "%v %v", a, b)
			}
		}
	}
}

func TestBuildIndex(x *testing.T) {
	t := assert.New(x)
	u, txs, f := sample(t, 0.2)
	idx := BuildIndex(Build(f, txs))
	t.Equal(4, len(idx))
	t.Equal(NList{{3, Position{1, 3}}}, idx[item(u, "Milk")])
	t.Equal(NList{{2, Position{2, 2}}, {1, Position{5, 4}}}, idx[item(u, "Bread")])
	t.Equal(NList{{1, Position{3, 0}}, {1, Position{6, 5}}}, idx[item(u, "Eggs")])
	t.Equal(NList{{1, Position{4, 1}}, {1, Position{7, 6}}}, idx[item(u, "Rice")])
	for it, l := range idx {
		t.Equal(f.Counts[it], l.Support())
	}
	t.Equal("<(2, 2): 2>\n<(5, 4): 1>", idx[item(u, "Bread")].String())
}

func TestPattern(x *testing.T) {
	t := assert.New(x)
	p := NewPattern(itemset.New(1, 0), NList{{2, Position{1, 3}}, {1, Position{5, 4}}})
	t.Equal(2, p.Size())
	t.Equal(3, p.Support())
	t.False(p.Maximal())
	p.SetMaximal(true)
	t.True(p.Maximal())
}
