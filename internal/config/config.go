// Package config holds the settings shared by the CLI and the HTTP function.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"crosswarped.com/wordle/internal/corpus"
)

const (
	SourceFile     = corpus.KindFile
	SourceBigQuery = corpus.KindBigQuery
)

type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

type CorpusConfig struct {
	// Source is "file" or "bigquery".
	Source         string         `yaml:"source"`
	DictionaryPath string         `yaml:"dictionary"`
	FrequencyPath  string         `yaml:"frequency"`
	BigQuery       BigQueryConfig `yaml:"bigquery"`
}

type BigQueryConfig struct {
	Project  string `yaml:"project"`
	Dataset  string `yaml:"dataset"`
	Table    string `yaml:"table"`
	Location string `yaml:"location"`
}

type DisplayConfig struct {
	// Top is the number of suggestions shown.
	Top int `yaml:"top"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Corpus: CorpusConfig{
			Source:         SourceFile,
			DictionaryPath: "words.txt",
			FrequencyPath:  "unigram_freq.csv",
			BigQuery: BigQueryConfig{
				Location: "US",
			},
		},
		Display: DisplayConfig{Top: 10},
		Server:  ServerConfig{Port: "8080"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file. The result is not validated so callers can
// apply their own overrides first; call Validate before using it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("WORDLE_CORPUS_SOURCE"); v != "" {
		c.Corpus.Source = v
	}
	if v := getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if getenv("LOCAL_ONLY") == "true" {
		c.Server.Host = "127.0.0.1"
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Corpus.Source {
	case SourceFile:
		if c.Corpus.DictionaryPath == "" && c.Corpus.FrequencyPath == "" {
			return errors.New("corpus: dictionary or frequency must be set")
		}
	case SourceBigQuery:
		bq := c.Corpus.BigQuery
		if bq.Project == "" || bq.Dataset == "" || bq.Table == "" {
			return errors.New("corpus.bigquery: project, dataset and table must be set")
		}
	default:
		return fmt.Errorf("corpus.source: unknown source %q", c.Corpus.Source)
	}
	if c.Display.Top < 1 {
		return fmt.Errorf("display.top must be at least 1, got %d", c.Display.Top)
	}
	return nil
}

// Params converts the corpus settings for corpus.Load.
func (c CorpusConfig) Params() corpus.Source {
	return corpus.Source{
		Kind: c.Source,
		Files: corpus.FileParams{
			DictionaryPath: c.DictionaryPath,
			FrequencyPath:  c.FrequencyPath,
		},
		BigQuery: corpus.BigQueryParams{
			Project:  c.BigQuery.Project,
			Dataset:  c.BigQuery.Dataset,
			Table:    c.BigQuery.Table,
			Location: c.BigQuery.Location,
		},
	}
}
