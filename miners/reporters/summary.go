package reporters

import (
	"fmt"
	"os"
	"strings"
)

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
	"github.com/SayonikaY/Group-12-Data-mining/stats"
)

// Summary writes the plain text recommendation report: a header with the
// support percentage and the number of itemsets, then one line per itemset.
type Summary struct {
	config   *config.Config
	fmtr     miners.Formatter
	filename string
	names    []string
}

func NewSummary(c *config.Config, fmtr miners.Formatter, filename string) *Summary {
	return &Summary{
		config:   c,
		fmtr:     fmtr,
		filename: filename,
	}
}

func (r *Summary) Report(p *ppc.Pattern) error {
	r.names = append(r.names, r.fmtr.PatternName(p.Items))
	return nil
}

func (r *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%v%% support) Recommended %d combos:\n", stats.Percent(r.config.Support), len(r.names))
	fmt.Fprintf(&b, "(Stand-alone item is popular item)\n\n\n")
	for _, name := range r.names {
		fmt.Fprintf(&b, "  + %v\n", name)
	}
	return b.String()
}

func (r *Summary) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, err = f.WriteString(r.String())
	cerr := f.Close()
	if err != nil {
		return err
	}
	return cerr
}
