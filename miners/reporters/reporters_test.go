package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/miners/prepost"
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

func mine(t *assert.Assertions, conf *config.Config, build func(miners.Formatter) miners.Reporter) {
	db, err := itemset.NewDatabase(conf, itemset.NewUniverse(itemset.SampleItems), true)
	t.Nil(err)
	for _, tx := range itemset.SampleTransactions {
		t.Nil(db.Add(tx))
	}
	fmtr := itemset.NewFormatter(db)
	m := prepost.NewMiner(conf)
	t.Nil(m.Mine(db, build(fmtr), fmtr))
	t.Nil(m.Close())
}

func read(t *assert.Assertions, path string) string {
	bytes, err := ioutil.ReadFile(path)
	t.Nil(err)
	return string(bytes)
}

func TestFileAndCount(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir(), Support: 0.2}
	mine(t, conf, func(fmtr miners.Formatter) miners.Reporter {
		file, err := NewFile(conf, fmtr, "patterns", "embeddings", "nlists")
		t.Nil(err)
		count, err := NewCount(conf, "count")
		t.Nil(err)
		return &Chain{[]miners.Reporter{file, count}}
	})
	t.Equal("Milk\t3\nBread\t3\nEggs\t2\nRice\t2\nMilk, Bread\t2\n", read(t, conf.OutputFile("patterns.items")))
	t.Equal("Milk\t0 1 6\nBread\t0 2 6\nEggs\t0 3\nRice\t5 6\nMilk, Bread\t0 6\n", read(t, conf.OutputFile("embeddings.items")))
	t.Contains(read(t, conf.OutputFile("nlists")), "Bread\n<(2, 2): 2>\n<(5, 4): 1>\n\n")
	t.Contains(read(t, conf.OutputFile("nlists")), "Milk, Bread\n<(1, 3): 2>\n\n")
	t.Equal("5\n1\t4\t2.5\n2\t1\t2\n", read(t, conf.OutputFile("count")))
}

func TestSummary(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir(), Support: 0.2}
	mine(t, conf, func(fmtr miners.Formatter) miners.Reporter {
		return NewSummary(conf, fmtr, "summary.txt")
	})
	t.Equal(
		"(20% support) Recommended 5 combos:\n"+
			"(Stand-alone item is popular item)\n\n\n"+
			"  + Milk\n  + Bread\n  + Eggs\n  + Rice\n  + Milk, Bread\n",
		read(t, conf.OutputFile("summary.txt")))
}

func TestTree(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir(), Support: 0.2}
	mine(t, conf, func(fmtr miners.Formatter) miners.Reporter {
		return &Chain{[]miners.Reporter{NewTree(conf, fmtr, "tree.json")}}
	})
	var doc treeDoc
	t.Nil(json.Unmarshal([]byte(read(t, conf.OutputFile("tree.json"))), &doc))
	t.Equal(8, len(doc.Nodes))
	t.Equal(7, len(doc.Edges))
	t.Equal(treeNode{Id: 1, Item: "Milk", Count: 3, Pre: 1, Post: 3, Label: "Milk(3) <1;3>"}, doc.Nodes[1])
	t.Equal("", doc.Nodes[0].Item)
	t.Equal(treeEdge{Src: 0, Targ: 5}, doc.Edges[1])
}

func TestMaxUniqueSkip(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir(), Support: 0.2}
	maximal := &Collector{}
	every := &Collector{}
	var uniq *Unique
	mine(t, conf, func(fmtr miners.Formatter) miners.Reporter {
		max, err := NewMax(maximal)
		t.Nil(err)
		uniq, err = NewUnique(conf, fmtr, NewSkip(2, every), "histogram")
		t.Nil(err)
		return &Chain{[]miners.Reporter{max, uniq}}
	})
	t.Equal(3, len(maximal.Patterns))
	t.Equal("Milk, Bread", maximal.Patterns[2].Items.Format(itemset.NewUniverse(itemset.SampleItems)))
	t.True(maximal.Closed)
	t.NotNil(every.Tree)
	t.Equal(2, len(every.Patterns))
	t.Equal(5, uniq.Seen.Size())
	t.Contains(read(t, conf.OutputFile("histogram.csv")), "1, 0.2, Milk, Bread\n")
}

func TestUniqueDropsRepeats(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir(), Support: 0.2}
	inner := &Collector{}
	var uniq *Unique
	mine(t, conf, func(fmtr miners.Formatter) miners.Reporter {
		var err error
		uniq, err = NewUnique(conf, fmtr, inner, "")
		t.Nil(err)
		return &Chain{[]miners.Reporter{uniq, uniq}}
	})
	t.Equal(5, len(inner.Patterns))
	t.Equal(10, uniq.count)
}

func TestDir(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir(), Support: 0.2}
	mine(t, conf, func(fmtr miners.Formatter) miners.Reporter {
		d, err := NewDir(conf, fmtr, "patterns")
		t.Nil(err)
		return d
	})
	dir := conf.OutputFile("patterns")
	t.Equal("5\n", read(t, filepath.Join(dir, "count")))
	t.Equal("Milk, Bread\n", read(t, filepath.Join(dir, "4", "pattern.name")))
	t.Equal("Milk, Bread\t2\n", read(t, filepath.Join(dir, "4", "pattern.items")))
	t.Equal("<(1, 3): 2>\n", read(t, filepath.Join(dir, "4", "pattern.nlist")))
	t.Equal("0\n6\n", read(t, filepath.Join(dir, "4", "embeddings")))
}
