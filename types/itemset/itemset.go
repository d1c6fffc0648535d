package itemset

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Item is the position of an item name in its Universe. Because of that the
// natural order of Items is the tie-break order supplied by the caller.
type Item int32

// Itemset is an immutable set of items. Two itemsets are equal iff they hold
// the same items; Label is the canonical key.
type Itemset struct {
	items *set.SortedSet
}

func setToItems(s *set.SortedSet) []Item {
	items := make([]Item, 0, s.Size())
	for i, n := s.Items()(); n != nil; i, n = n() {
		items = append(items, Item(i.(types.Int32)))
	}
	return items
}

func itemsToSet(list []Item) *set.SortedSet {
	items := set.NewSortedSet(len(list))
	for _, item := range list {
		items.Add(types.Int32(item))
	}
	return items
}

func New(items ...Item) *Itemset {
	return &Itemset{items: itemsToSet(items)}
}

func (s *Itemset) Size() int {
	return s.items.Size()
}

func (s *Itemset) Has(item Item) bool {
	return s.items.Has(types.Int32(item))
}

// Items returns the members in ascending order.
func (s *Itemset) Items() []Item {
	return setToItems(s.items)
}

func (s *Itemset) Union(o *Itemset) *Itemset {
	items := s.items.Copy()
	for i, n := o.items.Items()(); n != nil; i, n = n() {
		items.Add(i)
	}
	return &Itemset{items: items}
}

func (s *Itemset) Label() []byte {
	size := uint32(s.items.Size())
	bytes := make([]byte, 4*(size+1))
	binary.BigEndian.PutUint32(bytes[0:4], size)
	off := 4
	for i, n := s.items.Items()(); n != nil; i, n = n() {
		binary.BigEndian.PutUint32(bytes[off:off+4], uint32(int32(i.(types.Int32))))
		off += 4
	}
	return bytes
}

func (s *Itemset) Key() string {
	return string(s.Label())
}

func (s *Itemset) Equals(o types.Equatable) bool {
	a := types.ByteSlice(s.Label())
	switch b := o.(type) {
	case *Itemset:
		return a.Equals(types.ByteSlice(b.Label()))
	default:
		return false
	}
}

func (s *Itemset) Less(o types.Sortable) bool {
	a := types.ByteSlice(s.Label())
	switch b := o.(type) {
	case *Itemset:
		return a.Less(types.ByteSlice(b.Label()))
	default:
		return false
	}
}

func (s *Itemset) Hash() int {
	return types.ByteSlice(s.Label()).Hash()
}

// Names resolves the members against u, in universe order.
func (s *Itemset) Names(u *Universe) []string {
	names := make([]string, 0, s.Size())
	for _, item := range s.Items() {
		names = append(names, u.Name(item))
	}
	return names
}

func (s *Itemset) Format(u *Universe) string {
	return strings.Join(s.Names(u), ", ")
}

func (s *Itemset) String() string {
	return fmt.Sprintf("%v", s.Items())
}
