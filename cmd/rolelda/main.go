// Command rolelda fits the two-level theme/role topic model of
// spec.md: it derives a vocabulary and initial assignments from a
// character-word corpus, then runs the sharded Gibbs sampling
// coordinator for the configured number of iterations, printing a topic-word report along the
// way and persisting iteration telemetry to SQLite.
//
// Grounded on fsvxavier-nexs-mcp/cmd/nexs-mcp for the
// flags-then-config-then-run shape (reference only — that repo's MCP
// server logic has no bearing here).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/fluhus/rolelda/config"
	"github.com/fluhus/rolelda/coordinator"
	"github.com/fluhus/rolelda/corpus"
	"github.com/fluhus/rolelda/model"
	"github.com/fluhus/rolelda/report"
	"github.com/fluhus/rolelda/runlog"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	inputPath := flag.String("input", "", "path to the character-word corpus (overrides config)")
	vocabOut := flag.String("vocab-out", "", "path to write the selected vocabulary (optional)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *inputPath, *vocabOut, logger); err != nil {
		logger.Error("rolelda failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, inputPath, vocabOut string, logger *slog.Logger) error {
	opts, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		opts.InputPath = inputPath
	}
	if opts.InputPath == "" {
		return fmt.Errorf("rolelda: no input path given (set -input or config inputpath)")
	}

	vocab, err := buildVocabulary(opts, vocabOut)
	if err != nil {
		return err
	}

	hp, err := model.NewHyperparameters(opts.NumThemes, opts.NumRoles,
		constantAlpha(opts.NumThemes+opts.NumRoles, opts.AlphaMean), opts.Beta)
	if err != nil {
		return err
	}

	loaded, err := loadCorpus(opts, vocab, hp, logger)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", "books", len(loaded.Books), "vocab", len(vocab.Words))

	printer := report.NewPrinter(os.Stdout, vocab.Words)
	c := coordinator.New(loaded.Books, loaded.TW, hp, opts.NumProcesses, opts.AlphaMean, opts.ShuffleSeed)
	c.Reporter = printer

	if opts.RunLogPath != "" {
		rl, err := runlog.Open(opts.RunLogPath)
		if err != nil {
			return err
		}
		defer rl.Close()
		c.Telemetry = rl
	}

	if err := c.Run(opts.NumIterations); err != nil {
		return err
	}

	printer.Report(c.Iteration, c.TW)
	return nil
}

func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func buildVocabulary(opts config.Options, vocabOut string) (*corpus.Vocabulary, error) {
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocab, err := corpus.BuildVocabulary(f, opts.NumWords, opts.MaxLines)
	if err != nil {
		return nil, err
	}

	if vocabOut == "" {
		vocabOut = opts.VocabPath
	}
	if vocabOut != "" {
		out, err := os.Create(vocabOut)
		if err != nil {
			return nil, err
		}
		defer out.Close()
		if _, err := vocab.WriteTo(out); err != nil {
			return nil, err
		}
	}
	return vocab, nil
}

func loadCorpus(opts config.Options, vocab *corpus.Vocabulary, hp model.Hyperparameters, logger *slog.Logger) (*corpus.LoadResult, error) {
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rng := newSeededRand(opts.ShuffleSeed)
	return corpus.Load(f, vocab, hp, opts.MaxLines, rng, logger)
}

func constantAlpha(k int, alphaMean float64) []float64 {
	alpha := make([]float64, k)
	for i := range alpha {
		alpha[i] = alphaMean
	}
	return alpha
}
