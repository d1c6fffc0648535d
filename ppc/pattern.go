package ppc

import (
	"fmt"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// Pattern is a frequent itemset together with the N-list its support is
// computed from.
type Pattern struct {
	Items   *itemset.Itemset
	NList   NList
	maximal bool
}

func NewPattern(items *itemset.Itemset, nlist NList) *Pattern {
	return &Pattern{Items: items, NList: nlist}
}

func (p *Pattern) Size() int {
	return p.Items.Size()
}

func (p *Pattern) Support() int {
	return p.NList.Support()
}

func (p *Pattern) Label() []byte {
	return p.Items.Label()
}

// Maximal is true when no frequent pattern one item larger contains p. It is
// only meaningful once mining is over.
func (p *Pattern) Maximal() bool {
	return p.maximal
}

func (p *Pattern) SetMaximal(maximal bool) {
	p.maximal = maximal
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern %v %v>", p.Items, p.Support())
}
