package reporters

import (
	"io"
	"os"
	"runtime/pprof"
)

import ()

import (
	"github.com/SayonikaY/Group-12-Data-mining/ppc"
)

// HeapProfile writes a heap profile after every n-th reported pattern,
// starting once after patterns have been seen.
type HeapProfile struct {
	f     io.WriteCloser
	after int
	every int
	count int
}

func NewHeapProfile(path string, after, every int) (*HeapProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if every < 1 {
		every = 1
	}
	hp := &HeapProfile{f: f, after: after, every: every}
	return hp, nil
}

func (hp *HeapProfile) Report(p *ppc.Pattern) error {
	hp.count++
	if hp.count <= hp.after || (hp.count-hp.after)%hp.every != 0 {
		return nil
	}
	return pprof.WriteHeapProfile(hp.f)
}

func (hp *HeapProfile) Close() error {
	return hp.f.Close()
}
