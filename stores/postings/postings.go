package postings

import (
	"encoding/binary"
	"sync"
)

import (
	"github.com/timtadh/fs2"
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// MultiMap maps an item id to the ids of the transactions containing it.
type MultiMap interface {
	Add(item, tx int32) error
	Has(item int32) (bool, error)
	Count(item int32) (int, error)
	Find(item int32) (Iterator, error)
	DoFind(item int32, do func(item, tx int32) error) error
	Transactions(item int32) ([]int32, error)
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (int32, int32, error, Iterator)

func Do(run func() (Iterator, error), do func(item, tx int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var item, tx int32
	for item, tx, err, kvi = kvi(); kvi != nil; item, tx, err, kvi = kvi() {
		e := do(item, tx)
		if e != nil {
			return e
		}
	}
	return err
}

func serialize(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i))
	return bytes
}

func deserialize(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes))
}

type BpTree struct {
	bf    *fmap.BlockFile
	bpt   *bptree.BpTree
	mutex sync.Mutex
}

func AnonBpTree() (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func NewBpTree(path string) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func newBpTree(bf *fmap.BlockFile) (*BpTree, error) {
	bpt, err := bptree.New(bf, 4, 4)
	if err != nil {
		return nil, err
	}
	b := &BpTree{
		bf:  bf,
		bpt: bpt,
	}
	return b, nil
}

func (b *BpTree) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bf.Close()
}

// Delete closes the store and removes its backing file, if it has one.
func (b *BpTree) Delete() error {
	err := b.Close()
	if err != nil {
		return err
	}
	if b.bf.Path() != "" {
		return b.bf.Remove()
	}
	return nil
}

func (b *BpTree) Size() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Size()
}

func (b *BpTree) Add(item, tx int32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Add(serialize(item), serialize(tx))
}

func (b *BpTree) Has(item int32) (bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Has(serialize(item))
}

func (b *BpTree) Count(item int32) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Count(serialize(item))
}

func (b *BpTree) kvIter(kvi fs2.Iterator) (it Iterator) {
	it = func() (item, tx int32, err error, _ Iterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k, v []byte
		k, v, err, kvi = kvi()
		if err != nil {
			return 0, 0, err, nil
		}
		if kvi == nil {
			return 0, 0, nil, nil
		}
		return deserialize(k), deserialize(v), nil, it
	}
	return it
}

func (b *BpTree) Find(item int32) (it Iterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Find(serialize(item))
	if err != nil {
		return nil, err
	}
	return b.kvIter(raw), nil
}

func (b *BpTree) DoFind(item int32, do func(item, tx int32) error) error {
	return Do(func() (Iterator, error) { return b.Find(item) }, do)
}

// Transactions lists the transactions holding item in insertion order.
func (b *BpTree) Transactions(item int32) ([]int32, error) {
	txs := make([]int32, 0, 10)
	err := b.DoFind(item, func(_, tx int32) error {
		txs = append(txs, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}
