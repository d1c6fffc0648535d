package reporters

import ()

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

// Max only passes on the patterns no larger frequent pattern contains.
type Max struct {
	Reporter miners.Reporter
}

func NewMax(reporter miners.Reporter) (*Max, error) {
	m := &Max{
		Reporter: reporter,
	}
	return m, nil
}

func (r *Max) ReportTree(t *ppc.Tree) error {
	if tr, ok := r.Reporter.(miners.TreeReporter); ok {
		return tr.ReportTree(t)
	}
	return nil
}

func (r *Max) Report(p *ppc.Pattern) error {
	if p.Maximal() {
		return r.Reporter.Report(p)
	}
	return nil
}

func (r *Max) Close() error {
	return r.Reporter.Close()
}
