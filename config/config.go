package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/stores/postings"
)

type Config struct {
	Cache         string
	Output        string
	Support       float64
	MaxK          int
	MaxCandidates int
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:         c.Cache,
		Output:        c.Output,
		Support:       c.Support,
		MaxK:          c.MaxK,
		MaxCandidates: c.MaxCandidates,
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) Postings(name string) (postings.MultiMap, error) {
	if c.Cache == "" {
		return postings.AnonBpTree()
	} else {
		return postings.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
