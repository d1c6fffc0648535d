package reporters

import (
	"fmt"
	"os"
)

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
	"github.com/SayonikaY/Group-12-Data-mining/stats"
)

// Count writes the number of patterns to a file in the output directory,
// followed by one line per size: size, patterns, mean support.
type Count struct {
	config   *config.Config
	count    int
	supports [][]float64
	filename string
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) Report(p *ppc.Pattern) error {
	r.count++
	for len(r.supports) < p.Size() {
		r.supports = append(r.supports, nil)
	}
	r.supports[p.Size()-1] = append(r.supports[p.Size()-1], float64(p.Support()))
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", r.count)
	for k, supports := range r.supports {
		if perr != nil {
			break
		}
		_, perr = fmt.Fprintf(f, "%v\t%v\t%v\n", k+1, len(supports), stats.Round(stats.Mean(supports), 3))
	}
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}
