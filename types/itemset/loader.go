package itemset

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"unicode"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/stores/postings"
)

type Input func() (reader io.Reader, closer func())

type Loader interface {
	Load(input Input) (*Database, error)
}

// Database is a loaded transaction collection together with its universe and
// an inverted index from items to the transactions containing them.
type Database struct {
	Universe     *Universe
	Transactions []Transaction
	Postings     postings.MultiMap
	Unknown      int
	fixed        bool
}

// NewDatabase creates an empty database. When fixed is true the universe is
// closed and unknown names are dropped, otherwise every new name is appended
// to the universe when first seen.
func NewDatabase(conf *config.Config, universe *Universe, fixed bool) (*Database, error) {
	index, err := conf.Postings("itemsets-postings")
	if err != nil {
		return nil, err
	}
	if universe == nil {
		universe = NewUniverse(nil)
	}
	d := &Database{
		Universe:     universe,
		Transactions: make([]Transaction, 0, 10),
		Postings:     index,
		fixed:        fixed,
	}
	return d, nil
}

func (d *Database) Add(names []string) error {
	if !d.fixed {
		for _, name := range names {
			d.Universe.Add(name)
		}
	}
	tx, unknown := d.Universe.Transaction(names)
	id := int32(len(d.Transactions))
	for _, name := range unknown {
		errors.Logf("WARN", "transaction %d references unknown item '%s', ignoring it", id, name)
		d.Unknown++
	}
	for _, item := range tx {
		err := d.Postings.Add(int32(item), id)
		if err != nil {
			return err
		}
	}
	d.Transactions = append(d.Transactions, tx)
	return nil
}

// Support lists the transactions containing every item of items, found by
// intersecting the posting lists.
func (d *Database) Support(items *Itemset) ([]int32, error) {
	var txs types.Set
	for _, item := range items.Items() {
		mytxs := set.NewSortedSet(10)
		err := d.Postings.DoFind(int32(item), func(_, tx int32) error {
			return mytxs.Add(types.Int32(tx))
		})
		if err != nil {
			return nil, err
		}
		if txs == nil {
			txs = mytxs
		} else {
			txs, err = txs.Intersect(mytxs)
			if err != nil {
				return nil, err
			}
		}
	}
	stxs := make([]int32, 0, 10)
	if txs == nil {
		return stxs, nil
	}
	for tx, next := txs.Items()(); next != nil; tx, next = next() {
		stxs = append(stxs, int32(tx.(types.Int32)))
	}
	return stxs, nil
}

func (d *Database) Close() error {
	return d.Postings.Delete()
}

type jsonRecord struct {
	Items        []string   `json:"items"`
	Transactions [][]string `json:"transactions"`
}

// JsonLoader reads the two field record {"items": [...], "transactions":
// [[...], ...]}. An empty items list means the universe is the order in which
// items first appear in the transactions.
type JsonLoader struct {
	config *config.Config
}

func NewJsonLoader(conf *config.Config) Loader {
	return &JsonLoader{config: conf}
}

func (l *JsonLoader) Load(input Input) (*Database, error) {
	in, closer := input()
	defer closer()
	var rec jsonRecord
	err := json.NewDecoder(in).Decode(&rec)
	if err != nil {
		return nil, errors.Errorf("could not decode the items/transactions record: %v", err)
	}
	if rec.Transactions == nil {
		return nil, errors.Errorf("the record has no transactions field")
	}
	fixed := len(rec.Items) > 0
	d, err := NewDatabase(l.config, NewUniverse(rec.Items), fixed)
	if err != nil {
		return nil, err
	}
	for _, tx := range rec.Transactions {
		err := d.Add(tx)
		if err != nil {
			d.Close()
			return nil, err
		}
	}
	errors.Logf("INFO", "loaded %d transactions over %d items", len(d.Transactions), d.Universe.Size())
	return d, nil
}

// LinesLoader reads one transaction per line. Items are separated by commas
// and/or whitespace. Blank lines and lines starting with # are skipped.
type LinesLoader struct {
	config *config.Config
	items  []string
}

// NewLinesLoader makes a loader. A non empty items list fixes the universe.
func NewLinesLoader(conf *config.Config, items []string) Loader {
	return &LinesLoader{config: conf, items: items}
}

func splitItems(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func (l *LinesLoader) Load(input Input) (*Database, error) {
	d, err := NewDatabase(l.config, NewUniverse(l.items), len(l.items) > 0)
	if err != nil {
		return nil, err
	}
	in, closer := input()
	defer closer()
	err = processLines(in, func(line string) error {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return nil
		}
		return d.Add(splitItems(line))
	})
	if err != nil {
		d.Close()
		return nil, err
	}
	errors.Logf("INFO", "loaded %d transactions over %d items", len(d.Transactions), d.Universe.Size())
	return d, nil
}

// ReadItems reads an item universe, one name per line.
func ReadItems(in io.Reader) ([]string, error) {
	items := make([]string, 0, 10)
	err := processLines(in, func(line string) error {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			items = append(items, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func processLines(in io.Reader, process func(string) error) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := process(scanner.Text()); err != nil {
			return errors.Errorf("line %d: %v", lineno, err)
		}
	}
	return scanner.Err()
}
