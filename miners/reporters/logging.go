package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

type Log struct {
	fmtr   miners.Formatter
	nlists bool
	level  string
	prefix string
	count  int
}

// NewLog logs each pattern with its support, and its N-list when nlists is
// set.
func NewLog(fmtr miners.Formatter, nlists bool, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, nlists: nlists, level: level, prefix: prefix}
}

func (lr *Log) Report(p *ppc.Pattern) error {
	lr.count++
	line := lr.fmtr.FormatPattern(p.Items, p.Support())
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, line)
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, line)
	}
	if lr.nlists {
		for _, o := range p.NList {
			errors.Logf(lr.level, "    %v", o)
		}
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
