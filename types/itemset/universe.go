package itemset

import (
	"fmt"
	"sort"
)

// Universe is the ordered list of item names a database is defined over.
// An item's id is its position in the list.
type Universe struct {
	names []string
	ids   map[string]Item
}

func NewUniverse(names []string) *Universe {
	u := &Universe{
		names: make([]string, 0, len(names)),
		ids:   make(map[string]Item, len(names)),
	}
	for _, name := range names {
		u.Add(name)
	}
	return u
}

// Add registers name at the end of the universe. Names already present keep
// their first position.
func (u *Universe) Add(name string) Item {
	if item, has := u.ids[name]; has {
		return item
	}
	item := Item(len(u.names))
	u.names = append(u.names, name)
	u.ids[name] = item
	return item
}

func (u *Universe) Lookup(name string) (Item, bool) {
	item, has := u.ids[name]
	return item, has
}

func (u *Universe) Name(item Item) string {
	if item < 0 || int(item) >= len(u.names) {
		return fmt.Sprintf("<unknown %d>", item)
	}
	return u.names[item]
}

func (u *Universe) Names() []string {
	return append([]string(nil), u.names...)
}

func (u *Universe) Size() int {
	return len(u.names)
}

// Transaction is a set of items, kept sorted by id.
type Transaction []Item

// NewTransaction dedupes items. Membership is what counts, never multiplicity.
func NewTransaction(items []Item) Transaction {
	seen := make(map[Item]bool, len(items))
	tx := make(Transaction, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			tx = append(tx, item)
		}
	}
	sort.Slice(tx, func(i, j int) bool { return tx[i] < tx[j] })
	return tx
}

// Transaction resolves names against the universe. Names outside of it are
// returned separately so callers can report them; they never reach the
// transaction.
func (u *Universe) Transaction(names []string) (tx Transaction, unknown []string) {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		if item, has := u.ids[name]; has {
			items = append(items, item)
		} else {
			unknown = append(unknown, name)
		}
	}
	return NewTransaction(items), unknown
}

func (tx Transaction) Has(item Item) bool {
	i := sort.Search(len(tx), func(i int) bool { return tx[i] >= item })
	return i < len(tx) && tx[i] == item
}
