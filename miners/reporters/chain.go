package reporters

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) ReportTree(t *ppc.Tree) error {
	for _, rpt := range r.Reporters {
		if tr, ok := rpt.(miners.TreeReporter); ok {
			err := tr.ReportTree(t)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Chain) Report(p *ppc.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
