package itemset

import (
	"fmt"
)

type Formatter struct {
	db *Database
}

func NewFormatter(db *Database) *Formatter {
	return &Formatter{db: db}
}

func (f *Formatter) FileExt() string {
	return ".items"
}

func (f *Formatter) Universe() *Universe {
	return f.db.Universe
}

func (f *Formatter) PatternName(items *Itemset) string {
	return items.Format(f.db.Universe)
}

func (f *Formatter) FormatPattern(items *Itemset, support int) string {
	return fmt.Sprintf("%v\t%d", f.PatternName(items), support)
}

// FormatEmbeddings lists the ids of the transactions supporting items.
func (f *Formatter) FormatEmbeddings(items *Itemset) ([]string, error) {
	txs, err := f.db.Support(items)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf("%v", tx))
	}
	return lines, nil
}
