package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
)

func input(s string) Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(s), func() {}
	}
}

func sampleDatabase(t *assert.Assertions) *Database {
	d, err := NewDatabase(&config.Config{}, NewUniverse(SampleItems), true)
	t.Nil(err)
	for _, tx := range SampleTransactions {
		t.Nil(d.Add(tx))
	}
	return d
}

func TestItemsetCanonical(x *testing.T) {
	t := assert.New(x)
	a := New(3, 1, 2)
	b := New(2, 3, 1, 1)
	t.Equal(3, a.Size())
	t.Equal(3, b.Size())
	t.True(a.Equals(b))
	t.Equal(a.Label(), b.Label())
	t.Equal(a.Key(), b.Key())
	t.Equal(a.Hash(), b.Hash())
	t.Equal([]Item{1, 2, 3}, a.Items())
	t.False(a.Equals(New(1, 2)))
	t.False(a.Less(b))
	t.True(New(1, 2).Less(a))
}

func TestItemsetUnion(x *testing.T) {
	t := assert.New(x)
	a := New(0, 1)
	b := New(1, 2)
	u := a.Union(b)
	t.Equal([]Item{0, 1, 2}, u.Items())
	t.Equal([]Item{0, 1}, a.Items(), "union must not change its operands")
	t.True(u.Has(2))
	t.False(a.Has(2))
}

func TestItemsetsInSortedSet(x *testing.T) {
	t := assert.New(x)
	s := set.FromSlice([]types.Hashable{New(0, 1), New(1, 0), New(2)})
	t.Equal(2, s.Size())
	t.True(s.Has(New(1, 0)))
}

func TestUniverse(x *testing.T) {
	t := assert.New(x)
	u := NewUniverse([]string{"Milk", "Bread", "Milk", "Eggs"})
	t.Equal(3, u.Size())
	item, has := u.Lookup("Eggs")
	t.True(has)
	t.Equal(Item(2), item)
	_, has = u.Lookup("Tea")
	t.False(has)
	t.Equal("Bread", u.Name(1))

	tx, unknown := u.Transaction([]string{"Eggs", "Tea", "Milk", "Eggs"})
	t.Equal(Transaction{0, 2}, tx)
	t.Equal([]string{"Tea"}, unknown)
	t.True(tx.Has(2))
	t.False(tx.Has(1))
	t.Equal("Milk, Eggs", New(2, 0).Format(u))
}

func TestJsonLoader(x *testing.T) {
	t := assert.New(x)
	d, err := NewJsonLoader(&config.Config{}).Load(input(`{
		"items": ["Milk", "Bread", "Eggs"],
		"transactions": [["Milk", "Bread", "Eggs"], ["Bread", "Milk", "Tea"]]
	}`))
	t.Nil(err)
	defer d.Close()
	t.Equal(3, d.Universe.Size())
	t.Equal([]Transaction{{0, 1, 2}, {0, 1}}, d.Transactions)
	t.Equal(1, d.Unknown)
}

func TestJsonLoaderOpenUniverse(x *testing.T) {
	t := assert.New(x)
	d, err := NewJsonLoader(&config.Config{}).Load(input(`{"transactions": [["b", "a"], ["c"]]}`))
	t.Nil(err)
	defer d.Close()
	t.Equal([]string{"b", "a", "c"}, d.Universe.Names())
	t.Equal(0, d.Unknown)
}

func TestJsonLoaderErrors(x *testing.T) {
	t := assert.New(x)
	_, err := NewJsonLoader(&config.Config{}).Load(input(`{"items": ["a"]}`))
	t.NotNil(err)
	_, err = NewJsonLoader(&config.Config{}).Load(input(`{"items": [`))
	t.NotNil(err)
}

func TestLinesLoader(x *testing.T) {
	t := assert.New(x)
	d, err := NewLinesLoader(&config.Config{}, nil).Load(input(
		"# a comment\nMilk, Bread Eggs\n\nBread,Milk\n"))
	t.Nil(err)
	defer d.Close()
	t.Equal([]string{"Milk", "Bread", "Eggs"}, d.Universe.Names())
	t.Equal([]Transaction{{0, 1, 2}, {0, 1}}, d.Transactions)
}

func TestReadItems(x *testing.T) {
	t := assert.New(x)
	items, err := ReadItems(strings.NewReader("Bread\n\nMilk\n# x\n"))
	t.Nil(err)
	t.Equal([]string{"Bread", "Milk"}, items)
}

func TestSupportFromPostings(x *testing.T) {
	t := assert.New(x)
	d := sampleDatabase(t)
	defer d.Close()
	u := d.Universe
	milk, _ := u.Lookup("Milk")
	bread, _ := u.Lookup("Bread")
	rice, _ := u.Lookup("Rice")

	txs, err := d.Support(New(milk, bread))
	t.Nil(err)
	t.Equal([]int32{0, 6}, txs)

	txs, err = d.Support(New(milk, bread, rice))
	t.Nil(err)
	t.Equal([]int32{6}, txs)

	f := NewFormatter(d)
	lines, err := f.FormatEmbeddings(New(milk))
	t.Nil(err)
	t.Equal([]string{"0", "1", "6"}, lines)
	t.Equal("Milk, Bread\t2", f.FormatPattern(New(bread, milk), 2))
}
