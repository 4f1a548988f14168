package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/corpus"
	"crosswarped.com/wordle/internal/logging"
)

type rootFlags struct {
	configPath string
	dictionary string
	frequency  string
	source     string
	logLevel   string
	top        int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "wordlecli",
		Short: "Narrow down five letter word puzzle answers",
		Long: `Filters a word list against green, yellow and black feedback and
ranks what is left by how common each word is.

Examples:
  wordlecli play --dict words.txt --freq unigram_freq.csv
  wordlecli solve --greens s...e --yellow .a... --blacks rt`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.dictionary, "dict", "", "dictionary file, one word per line")
	pf.StringVar(&flags.frequency, "freq", "", "word,count frequency CSV")
	pf.StringVar(&flags.source, "source", "", "corpus source: file|bigquery")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug|info|warn|error")
	pf.IntVar(&flags.top, "top", 0, "number of suggestions to show")

	root.AddCommand(newPlayCmd(flags), newSolveCmd(flags))
	return root
}

// settings loads the config file and applies any flags that were set.
func (f *rootFlags) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	pf := cmd.Flags()
	if pf.Changed("dict") {
		cfg.Corpus.DictionaryPath = f.dictionary
	}
	if pf.Changed("freq") {
		cfg.Corpus.FrequencyPath = f.frequency
	}
	if pf.Changed("dict") != pf.Changed("freq") {
		// Naming only one file on the command line means only that file.
		if !pf.Changed("dict") {
			cfg.Corpus.DictionaryPath = ""
		}
		if !pf.Changed("freq") {
			cfg.Corpus.FrequencyPath = ""
		}
	}
	if pf.Changed("source") {
		cfg.Corpus.Source = f.source
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if pf.Changed("top") {
		cfg.Display.Top = f.top
	}
	return cfg, cfg.Validate()
}

func loadCorpus(ctx context.Context, cfg config.Config, logger *zap.Logger) (*corpus.Corpus, error) {
	start := time.Now()
	logger.Info("loading words", zap.String("source", cfg.Corpus.Source))
	c, err := corpus.Load(ctx, cfg.Corpus.Params())
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	logger.Info("loaded words", zap.Int("words", c.Len()), zap.Duration("dur", time.Since(start)))
	return c, nil
}

// setup resolves settings, builds the logger and loads the corpus shared by
// every session of the command.
func (f *rootFlags) setup(cmd *cobra.Command) (config.Config, *zap.Logger, *corpus.Corpus, error) {
	cfg, err := f.settings(cmd)
	if err != nil {
		return cfg, nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return cfg, nil, nil, err
	}
	c, err := loadCorpus(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return cfg, nil, nil, err
	}
	return cfg, logger, c, nil
}
