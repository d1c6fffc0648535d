package reporters

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

// Skip passes every n-th pattern on to its inner reporter.
type Skip struct {
	Skip     int
	Reporter miners.Reporter
	count    int
}

func NewSkip(n int, rptr miners.Reporter) *Skip {
	if n < 1 {
		n = 1
	}
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) ReportTree(t *ppc.Tree) error {
	if tr, ok := r.Reporter.(miners.TreeReporter); ok {
		return tr.ReportTree(t)
	}
	return nil
}

func (r *Skip) Report(p *ppc.Pattern) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(p)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
