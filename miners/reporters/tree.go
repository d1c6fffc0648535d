package reporters

import (
	"encoding/json"
	"os"
)

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

type treeNode struct {
	Id    int    `json:"id"`
	Item  string `json:"item"`
	Count int    `json:"count"`
	Pre   int    `json:"pre"`
	Post  int    `json:"post"`
	Label string `json:"label"`
}

type treeEdge struct {
	Src  int `json:"src"`
	Targ int `json:"targ"`
}

type treeDoc struct {
	Nodes []treeNode `json:"nodes"`
	Edges []treeEdge `json:"edges"`
}

// Tree writes the PPC tree as a JSON node list and edge list, the node ids
// being the pre-order numbers. Patterns are ignored.
type Tree struct {
	config   *config.Config
	fmtr     miners.Formatter
	filename string
	doc      *treeDoc
}

func NewTree(c *config.Config, fmtr miners.Formatter, filename string) *Tree {
	return &Tree{
		config:   c,
		fmtr:     fmtr,
		filename: filename,
	}
}

func (r *Tree) ReportTree(t *ppc.Tree) error {
	u := r.fmtr.Universe()
	doc := &treeDoc{
		Nodes: make([]treeNode, 0, t.Size()),
		Edges: make([]treeEdge, 0, t.Size()),
	}
	for _, n := range t.Nodes() {
		name := ""
		if !n.IsRoot() {
			name = u.Name(n.Item)
		}
		doc.Nodes = append(doc.Nodes, treeNode{
			Id:    n.Pre,
			Item:  name,
			Count: n.Count,
			Pre:   n.Pre,
			Post:  n.Post,
			Label: n.Label(u),
		})
	}
	for _, e := range t.Edges() {
		doc.Edges = append(doc.Edges, treeEdge{Src: e.Src, Targ: e.Targ})
	}
	r.doc = doc
	return nil
}

func (r *Tree) Report(p *ppc.Pattern) error {
	return nil
}

func (r *Tree) Close() error {
	if r.doc == nil {
		r.doc = &treeDoc{Nodes: []treeNode{}, Edges: []treeEdge{}}
	}
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err = enc.Encode(r.doc)
	cerr := f.Close()
	if err != nil {
		return err
	}
	return cerr
}
