package reporters

import (
	"fmt"
	"io"
	"os"
	"strings"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

// File writes one line per pattern to the patterns file, the supporting
// transactions to the embeddings file and the N-lists to the nlists file.
type File struct {
	config     *config.Config
	fmt        miners.Formatter
	patterns   io.WriteCloser
	embeddings io.WriteCloser
	nlists     io.WriteCloser
}

func NewFile(c *config.Config, fmt miners.Formatter, patternsFilename, embeddingsFilename, nlistsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	embeddings, err := os.Create(c.OutputFile(embeddingsFilename + fmt.FileExt()))
	if err != nil {
		patterns.Close()
		return nil, err
	}
	var nlists io.WriteCloser
	if nlistsFilename != "" {
		nlists, err = os.Create(c.OutputFile(nlistsFilename))
		if err != nil {
			patterns.Close()
			embeddings.Close()
			return nil, err
		}
	}
	r := &File{
		config:     c,
		fmt:        fmt,
		patterns:   patterns,
		embeddings: embeddings,
		nlists:     nlists,
	}
	return r, nil
}

func (r *File) Report(p *ppc.Pattern) error {
	_, err := fmt.Fprintln(r.patterns, r.fmt.FormatPattern(p.Items, p.Support()))
	if err != nil {
		return err
	}
	txs, err := r.fmt.FormatEmbeddings(p.Items)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.embeddings, "%v\t%v\n", r.fmt.PatternName(p.Items), strings.Join(txs, " "))
	if err != nil {
		return err
	}
	if r.nlists != nil {
		_, err = fmt.Fprintf(r.nlists, "%v\n%v\n\n", r.fmt.PatternName(p.Items), p.NList)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *File) Close() error {
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	err = r.embeddings.Close()
	if err != nil {
		return err
	}
	if r.nlists != nil {
		return r.nlists.Close()
	}
	return nil
}
