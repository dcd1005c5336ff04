// Package config loads the run options that parameterize a rolelda
// invocation (spec.md §6: numthemes, numroles, numwords, maxlines,
// alphamean, beta, numprocesses, numiterations, runlog path). There is
// no teacher analogue — fondoger-gostuff is a library, not a CLI app —
// so the layered-defaults-then-override shape here is grounded on
// fsvxavier-nexs-mcp/internal/config's LoadConfig, adapted from its
// flag+env layering to a YAML file plus .env/env override, since that
// is the stack this module's go.mod carries (gopkg.in/yaml.v3,
// github.com/joho/godotenv) in place of a flag-heavy CLI config.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options holds one run's parameters.
type Options struct {
	NumThemes     int     `yaml:"numthemes"`
	NumRoles      int     `yaml:"numroles"`
	NumWords      int     `yaml:"numwords"`
	MaxLines      int     `yaml:"maxlines"`
	AlphaMean     float64 `yaml:"alphamean"`
	Beta          float64 `yaml:"beta"`
	NumProcesses  int     `yaml:"numprocesses"`
	NumIterations int     `yaml:"numiterations"`
	ShuffleSeed   int64   `yaml:"shuffleseed"`

	InputPath  string `yaml:"inputpath"`
	VocabPath  string `yaml:"vocabpath"`
	RunLogPath string `yaml:"runlogpath"`

	LogLevel string `yaml:"loglevel"`
}

// defaults returns an Options populated with the values
// original_source/infer_two_levels.py hardcodes at the top of
// __main__, before any override is applied.
func defaults() Options {
	return Options{
		NumThemes:     20,
		NumRoles:      20,
		NumWords:      10000,
		MaxLines:      1000000,
		AlphaMean:     0.1,
		Beta:          0.1,
		NumProcesses:  1,
		NumIterations: 500,
		ShuffleSeed:   1,
		RunLogPath:    "runlog.db",
		LogLevel:      "info",
	}
}

// Load reads Options from a YAML file, then applies any matching
// ROLELDA_* environment variables (loaded from a .env file in the
// working directory, if present, via godotenv) on top — the same "file defaults,
// env overrides" layering fsvxavier-nexs-mcp's config applies, with
// YAML in place of that example's flag package.
func Load(path string) (Options, error) {
	opts := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Options{}, errors.Wrapf(err, "config: reading %q", path)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, errors.Wrapf(err, "config: parsing %q", path)
		}
	}

	_ = godotenv.Load() // .env is optional; absence is not an error

	applyEnvOverrides(&opts)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the invariants spec.md §4.1/§4.2 assume hold before
// a corpus is loaded: T and R may each be zero (spec.md §8 property 9
// — T=0 degenerates to character-only role LDA, R=0 degenerates to
// book-level theme LDA), but K = T+R must be positive, and β > 0 so
// every topic gives every word a positive smoothed weight.
func (o Options) Validate() error {
	if o.NumThemes < 0 {
		return errors.New("config: numthemes must not be negative")
	}
	if o.NumRoles < 0 {
		return errors.New("config: numroles must not be negative")
	}
	if o.NumThemes+o.NumRoles <= 0 {
		return errors.New("config: numthemes and numroles must not both be zero")
	}
	if o.Beta <= 0 {
		return errors.New("config: beta must be positive")
	}
	if o.NumProcesses <= 0 {
		return errors.New("config: numprocesses must be positive")
	}
	return nil
}
