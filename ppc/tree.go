package ppc

import (
	"fmt"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// Root is the item carried by the root of every tree.
const Root itemset.Item = -1

// Position is the pair of depth first numbers of a tree node.
type Position struct {
	Pre, Post int
}

// Ancestor reports whether the node at a is a proper ancestor of the node at
// b.
func (a Position) Ancestor(b Position) bool {
	return a.Pre < b.Pre && a.Post > b.Post
}

type Node struct {
	Item     itemset.Item
	Count    int
	Parent   *Node
	Children []*Node
	Position
}

func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

func (n *Node) child(item itemset.Item) *Node {
	for _, kid := range n.Children {
		if kid.Item == item {
			return kid
		}
	}
	kid := &Node{
		Item:     item,
		Parent:   n,
		Children: make([]*Node, 0, 2),
	}
	n.Children = append(n.Children, kid)
	return kid
}

func (n *Node) insert(items []itemset.Item) {
	if len(items) == 0 {
		return
	}
	kid := n.child(items[0])
	kid.Count++
	kid.insert(items[1:])
}

func (n *Node) Label(u *itemset.Universe) string {
	if n.IsRoot() {
		return fmt.Sprintf("<%d;%d>", n.Pre, n.Post)
	}
	return fmt.Sprintf("%v(%d) <%d;%d>", u.Name(n.Item), n.Count, n.Pre, n.Post)
}

func (n *Node) String() string {
	if n.IsRoot() {
		return fmt.Sprintf("<Node root <%d;%d>>", n.Pre, n.Post)
	}
	return fmt.Sprintf("<Node %v(%d) <%d;%d>>", n.Item, n.Count, n.Pre, n.Post)
}

// Tree is the PPC tree: a prefix tree over the frequency ordered projections
// of the transactions, numbered by one depth first traversal.
type Tree struct {
	Root     *Node
	Frequent *FrequentItems
	size     int
}

// Build inserts every transaction's projection onto the frequent items and
// then assigns the pre and post order numbers.
func Build(flist *FrequentItems, txs []itemset.Transaction) *Tree {
	t := &Tree{
		Root: &Node{
			Item:     Root,
			Children: make([]*Node, 0, flist.Len()),
			Position: Position{-1, -1},
		},
		Frequent: flist,
	}
	for _, tx := range txs {
		items := flist.Project(tx)
		if len(items) > 0 {
			t.Root.insert(items)
		}
	}
	pre, post := 0, 0
	var number func(n *Node)
	number = func(n *Node) {
		n.Pre = pre
		pre++
		for _, kid := range n.Children {
			number(kid)
		}
		n.Post = post
		post++
	}
	number(t.Root)
	t.size = pre
	return t
}

// Size counts the nodes, root included.
func (t *Tree) Size() int {
	return t.size
}

// Walk visits the nodes in pre-order.
func (t *Tree) Walk(do func(*Node) error) error {
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if err := do(n); err != nil {
			return err
		}
		for _, kid := range n.Children {
			if err := walk(kid); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.Root)
}

// Nodes lists the nodes in pre-order, so a node's index equals its Pre.
func (t *Tree) Nodes() []*Node {
	nodes := make([]*Node, 0, t.size)
	t.Walk(func(n *Node) error {
		nodes = append(nodes, n)
		return nil
	})
	return nodes
}

type Edge struct {
	Src, Targ int
}

// Edges lists the parent -> child links as indices into Nodes.
func (t *Tree) Edges() []Edge {
	edges := make([]Edge, 0, t.size)
	t.Walk(func(n *Node) error {
		for _, kid := range n.Children {
			edges = append(edges, Edge{Src: n.Pre, Targ: kid.Pre})
		}
		return nil
	})
	return edges
}
