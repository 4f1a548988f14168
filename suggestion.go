package wordle

import "strconv"

// Suggestion is a candidate word with its usage frequency.
type Suggestion struct {
	Word      string `json:"word"`
	Frequency int64  `json:"frequency,omitempty"`
	// Known is false when the corpus has no frequency for Word.
	Known bool `json:"known"`
}

// FrequencyString renders the frequency, or "" when it is unknown.
func (s Suggestion) FrequencyString() string {
	if !s.Known {
		return ""
	}
	return strconv.FormatInt(s.Frequency, 10)
}

// Suggestions is the ranked result of a solve.
type Suggestions struct {
	Items []Suggestion

	// SearchSpace counts the distinct matching words before any truncation.
	SearchSpace int
}

// Top returns at most n of the highest ranked suggestions.
func (s Suggestions) Top(n int) []Suggestion {
	if n < 0 || n >= len(s.Items) {
		return s.Items
	}
	return s.Items[:n]
}

// Words returns the suggested words in rank order.
func (s Suggestions) Words() []string {
	out := make([]string, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.Word
	}
	return out
}
