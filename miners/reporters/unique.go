package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

type seen struct {
	name  string
	count int
}

// Unique passes each itemset on once. With a histogram name it also writes
// how often every itemset was reported.
type Unique struct {
	count     int
	fmtr      miners.Formatter
	Seen      *hashtable.LinearHash
	order     []types.ByteSlice
	Reporter  miners.Reporter
	histogram io.WriteCloser
}

func NewUnique(conf *config.Config, fmtr miners.Formatter, reporter miners.Reporter, histogramName string) (*Unique, error) {
	var histogram io.WriteCloser = nil
	if histogramName != "" {
		var err error
		histogram, err = os.Create(conf.OutputFile(histogramName + ".csv"))
		if err != nil {
			return nil, err
		}
	}
	u := &Unique{
		fmtr:      fmtr,
		Seen:      hashtable.NewLinearHash(),
		Reporter:  reporter,
		histogram: histogram,
	}
	return u, nil
}

func (r *Unique) ReportTree(t *ppc.Tree) error {
	if tr, ok := r.Reporter.(miners.TreeReporter); ok {
		return tr.ReportTree(t)
	}
	return nil
}

func (r *Unique) Report(p *ppc.Pattern) error {
	r.count++
	label := types.ByteSlice(p.Label())
	if r.Seen.Has(label) {
		s, err := r.Seen.Get(label)
		if err != nil {
			return err
		}
		s.(*seen).count++
		return nil
	}
	err := r.Seen.Put(label, &seen{name: r.fmtr.PatternName(p.Items), count: 1})
	if err != nil {
		return err
	}
	r.order = append(r.order, label)
	return r.Reporter.Report(p)
}

func (r *Unique) Close() error {
	if r.histogram != nil {
		for _, label := range r.order {
			s, err := r.Seen.Get(label)
			if err != nil {
				errors.Logf("ERROR", "%v", err)
				continue
			}
			c := s.(*seen).count
			fmt.Fprintf(r.histogram, "%d, %.5g, %v\n", c, float64(c)/float64(r.count), s.(*seen).name)
		}
		err := r.histogram.Close()
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
	}
	return r.Reporter.Close()
}
