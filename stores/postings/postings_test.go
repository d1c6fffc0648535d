package postings

import "testing"
import "github.com/stretchr/testify/assert"

func TestAddFind(x *testing.T) {
	t := assert.New(x)
	b, err := AnonBpTree()
	t.Nil(err)
	defer b.Delete()
	t.Nil(b.Add(1, 0))
	t.Nil(b.Add(1, 2))
	t.Nil(b.Add(3, 1))
	t.Equal(3, b.Size())

	has, err := b.Has(1)
	t.Nil(err)
	t.True(has)
	has, err = b.Has(2)
	t.Nil(err)
	t.False(has)

	count, err := b.Count(1)
	t.Nil(err)
	t.Equal(2, count)

	txs, err := b.Transactions(1)
	t.Nil(err)
	t.ElementsMatch([]int32{0, 2}, txs)

	txs, err = b.Transactions(2)
	t.Nil(err)
	t.Empty(txs)
}
