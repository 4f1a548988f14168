package corpus

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FileParams names the files a corpus is loaded from. Either may be empty,
// but not both.
type FileParams struct {
	// DictionaryPath holds one word per line; lines starting with '#' are skipped.
	DictionaryPath string
	// FrequencyPath is a "word,count" CSV with a header row.
	FrequencyPath string
}

// LoadFiles reads a dictionary and a frequency table from disk.
func LoadFiles(ctx context.Context, p FileParams) (*Corpus, error) {
	if p.DictionaryPath == "" && p.FrequencyPath == "" {
		return nil, errors.New("corpus: no dictionary or frequency file given")
	}

	var words []string
	if p.DictionaryPath != "" {
		f, err := os.Open(p.DictionaryPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if words, err = ReadDictionary(ctx, f); err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.DictionaryPath, err)
		}
	}

	var freq map[string]int64
	if p.FrequencyPath != "" {
		f, err := os.Open(p.FrequencyPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if freq, err = ReadFrequencies(ctx, f); err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.FrequencyPath, err)
		}
	}

	return New(words, freq), nil
}

// ReadDictionary reads one word per line, lower-casing each.
//
// Words of other lengths or with characters outside a-z are kept here and
// dropped by New.
func ReadDictionary(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// ReadFrequencies reads "word,count" records. The first record is a header.
// Counts for a word that appears twice are summed.
func ReadFrequencies(ctx context.Context, r io.Reader) (map[string]int64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return map[string]int64{}, nil
		}
		return nil, err
	}

	freq := make(map[string]int64)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		count, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("line %d: bad count %q: %w", line, rec[1], err)
		}
		word := strings.ToLower(strings.TrimSpace(rec[0]))
		freq[word] += count
	}
	return freq, nil
}
