package wordle

import (
	"cmp"
	"slices"

	"crosswarped.com/wordle/pkg/primitives"
)

// Corpus is the fixed universe of candidate words and their usage frequencies.
type Corpus interface {
	// Words returns every candidate, lowercase and five letters long.
	Words() []string

	// Frequency returns the usage count of word, or false if it is unknown.
	Frequency(word string) (int64, bool)
}

// Filter returns the corpus words consistent with s, most frequent first.
func Filter(s Snapshot, corpus Corpus) Suggestions {
	required := primitives.NewCharSet()
	for _, seq := range s.Yellows {
		seq.Letters(required)
	}

	var possible []string
	for _, word := range corpus.Words() {
		if len(word) != WordLength {
			continue
		}
		if matchesGreens(s.Greens, word) && containsAll(word, required) && !s.Blacks.ContainsAny(word) {
			possible = append(possible, word)
		}
	}

	var filtered []string
	for _, word := range possible {
		if avoidsYellowSlots(s.Yellows, word) {
			filtered = append(filtered, word)
		}
	}

	return rank(filtered, corpus)
}

func matchesGreens(greens Pattern, word string) bool {
	for i := range WordLength {
		if want, ok := greens.At(i); ok && word[i] != want {
			return false
		}
	}
	return true
}

func containsAll(word string, letters *primitives.CharSet) bool {
	if letters.IsEmpty() {
		return true
	}
	present, err := primitives.CharSetOf(word)
	if err != nil {
		return false
	}
	for _, r := range letters.Letters() {
		if !present.Contains(r) {
			return false
		}
	}
	return true
}

// avoidsYellowSlots reports whether word has no yellow letter at the slot it
// was reported in, for every recorded sequence.
func avoidsYellowSlots(yellows []Pattern, word string) bool {
	for _, seq := range yellows {
		for i := range WordLength {
			if ch, ok := seq.At(i); ok && word[i] == ch {
				return false
			}
		}
	}
	return true
}

func rank(words []string, corpus Corpus) Suggestions {
	seen := make(map[string]bool, len(words))
	items := make([]Suggestion, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		f, known := corpus.Frequency(w)
		items = append(items, Suggestion{Word: w, Frequency: f, Known: known})
	}

	slices.SortStableFunc(items, func(a, b Suggestion) int {
		if a.Known != b.Known {
			if a.Known {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.Frequency, a.Frequency)
	})

	return Suggestions{Items: items, SearchSpace: len(items)}
}
