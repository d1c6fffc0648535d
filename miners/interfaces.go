package miners

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// Note: the miner's Close function should close both reporter and the database that were passed into it.
type Miner interface {
	Mine(*itemset.Database, Reporter, Formatter) error
	Close() error
}

type Reporter interface {
	Report(*ppc.Pattern) error
	Close() error
}

// TreeReporter is implemented by reporters which also want the PPC tree. The
// tree is handed over once, before the first pattern.
type TreeReporter interface {
	ReportTree(*ppc.Tree) error
}

type Formatter interface {
	FileExt() string
	Universe() *itemset.Universe
	PatternName(*itemset.Itemset) string
	FormatPattern(*itemset.Itemset, int) string
	FormatEmbeddings(*itemset.Itemset) ([]string, error)
}
