package reporters

import ()

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

type Collector struct {
	Tree     *ppc.Tree
	Patterns []*ppc.Pattern
	Closed   bool
}

func (c *Collector) ReportTree(t *ppc.Tree) error {
	c.Tree = t
	return nil
}

func (c *Collector) Report(p *ppc.Pattern) error {
	c.Patterns = append(c.Patterns, p)
	return nil
}

func (c *Collector) Close() error {
	c.Closed = true
	return nil
}
