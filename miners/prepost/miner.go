package prepost

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

// Miner runs the PrePost engine over a loaded database and hands the
// patterns to a reporter, smallest first.
type Miner struct {
	Config *config.Config
	Result *Result
	db     *itemset.Database
	rptr   miners.Reporter
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{Config: conf}
}

func (m *Miner) Options() Options {
	return Options{
		MaxK:          m.Config.MaxK,
		MaxCandidates: m.Config.MaxCandidates,
	}
}

func (m *Miner) Mine(db *itemset.Database, rptr miners.Reporter, fmtr miners.Formatter) error {
	m.db = db
	m.rptr = rptr
	errors.Logf("INFO", "mining %v transactions over %v items", len(db.Transactions), db.Universe.Size())
	r, err := Mine(db.Universe, db.Transactions, m.Config.Support, m.Options())
	if err != nil {
		return err
	}
	m.Result = r
	if r.Outcome != Mined {
		errors.Logf("INFO", "nothing to report: %v", r.Outcome)
		return nil
	}
	if tr, ok := rptr.(miners.TreeReporter); ok {
		if err := tr.ReportTree(r.Tree); err != nil {
			return err
		}
	}
	for _, p := range r.Patterns() {
		errors.Logf("DEBUG", "reporting %v", fmtr.PatternName(p.Items))
		if err := rptr.Report(p); err != nil {
			return err
		}
	}
	return nil
}

func (m *Miner) Close() error {
	var rerr, derr error
	if m.rptr != nil {
		rerr = m.rptr.Close()
	}
	if m.db != nil {
		derr = m.db.Close()
	}
	if rerr != nil {
		return rerr
	}
	return derr
}
