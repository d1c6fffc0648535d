package reporters

import (
	"fmt"
	"os"
	"path/filepath"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

// Dir writes every pattern into its own numbered directory.
type Dir struct {
	config *config.Config
	fmt    miners.Formatter
	dir    string
	count  int
}

func NewDir(c *config.Config, fmt miners.Formatter, dirname string) (*Dir, error) {
	patterns := c.OutputFile(dirname)
	err := os.MkdirAll(patterns, 0775)
	if err != nil {
		return nil, err
	}
	r := &Dir{
		config: c,
		fmt:    fmt,
		dir:    patterns,
	}
	return r, nil
}

func (r *Dir) Report(p *ppc.Pattern) error {
	dir := filepath.Join(r.dir, fmt.Sprintf("%d", r.count))
	err := os.MkdirAll(dir, 0775)
	if err != nil {
		return err
	}
	r.count++
	err = writeLines(filepath.Join(dir, "pattern.name"), r.fmt.PatternName(p.Items))
	if err != nil {
		return err
	}
	err = writeLines(filepath.Join(dir, "pattern"+r.fmt.FileExt()), r.fmt.FormatPattern(p.Items, p.Support()))
	if err != nil {
		return err
	}
	err = writeLines(filepath.Join(dir, "pattern.nlist"), p.NList.String())
	if err != nil {
		return err
	}
	txs, err := r.fmt.FormatEmbeddings(p.Items)
	if err != nil {
		return err
	}
	return writeLines(filepath.Join(dir, "embeddings"), txs...)
}

func (r *Dir) Close() error {
	return writeLines(filepath.Join(r.dir, "count"), fmt.Sprintf("%d", r.count))
}

func writeLines(path string, lines ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
