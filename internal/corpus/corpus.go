// Package corpus loads the candidate words and their usage frequencies.
package corpus

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

const wordLength = 5

// Corpus is an immutable word list paired with a frequency table.
type Corpus struct {
	words []string
	freq  map[string]int64
}

// New builds a corpus from a dictionary and a frequency table.
//
// Candidates are the union of both sources, restricted to lowercase five
// letter words, in lexicographic order. Frequencies for other words are
// discarded.
func New(dictionary []string, freq map[string]int64) *Corpus {
	set := mapset.NewThreadUnsafeSetWithSize[string](len(dictionary) + len(freq))
	for _, w := range dictionary {
		if isCandidate(w) {
			set.Add(w)
		}
	}
	kept := make(map[string]int64)
	for w, f := range freq {
		if isCandidate(w) {
			set.Add(w)
			kept[w] = f
		}
	}

	words := set.ToSlice()
	slices.Sort(words)
	return &Corpus{words: words, freq: kept}
}

func isCandidate(w string) bool {
	if len(w) != wordLength {
		return false
	}
	for i := range len(w) {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Words returns the candidates. Callers must not modify the slice.
func (c *Corpus) Words() []string {
	return c.words
}

// Frequency returns the usage count for word, or false if it has none.
func (c *Corpus) Frequency(word string) (int64, bool) {
	f, ok := c.freq[word]
	return f, ok
}

// Len returns the number of candidates.
func (c *Corpus) Len() int {
	return len(c.words)
}
