/*
Package config loads the sample data of the demo.
*/
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo sample lists.
type Config struct {
	Doubly       []int     `yaml:"doubly"`
	Palindromes  [][]int   `yaml:"palindromes"`
	Middle       [][]int   `yaml:"middle"`
	Nth          NthSample `yaml:"nth"`
	SearchTarget int       `yaml:"search_target"`
	Debug        bool      `yaml:"debug"`
}

// NthSample is a list and the indices to look up in it.
type NthSample struct {
	Values  []int `yaml:"values"`
	Indices []int `yaml:"indices"`
}

// Default returns the built in samples.
func Default() *Config {
	return &Config{
		Doubly: []int{10, 11, 12, 13},
		Palindromes: [][]int{
			{1, 2, 1, 1, 2, 1},
			{1, 2, 3, 4},
			{1, 2, 3, 2, 1},
		},
		Middle: [][]int{
			{1, 2, 3, 4, 5},
			{10, 20, 30, 40, 50, 60},
		},
		Nth: NthSample{
			Values:  []int{1, 2, 3, 4, 5},
			Indices: []int{3, 8},
		},
		SearchTarget: 12,
	}
}

// Load reads the config file at path. Fields missing from the file keep their defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills sections that were explicitly emptied and cannot run empty.
func applyDefaults(cfg *Config) {
	if len(cfg.Nth.Indices) == 0 {
		cfg.Nth.Indices = Default().Nth.Indices
	}
}
