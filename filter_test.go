package wordle

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/wordle/internal/corpus"
)

// mapCorpus keeps words in the order given, duplicates included.
type mapCorpus struct {
	words []string
	freq  map[string]int64
}

func (m mapCorpus) Words() []string { return m.words }

func (m mapCorpus) Frequency(word string) (int64, bool) {
	f, ok := m.freq[word]
	return f, ok
}

func loadCorpus(t testing.TB) *corpus.Corpus {
	c, err := corpus.LoadFiles(context.Background(), corpus.FileParams{
		DictionaryPath: "testdata/words.txt",
		FrequencyPath:  "testdata/freq.csv",
	})
	if err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}
	return c
}

func constraintsFor(t *testing.T, greens string, yellows []string, blacks string) Snapshot {
	t.Helper()
	c := NewConstraints()
	require.NoError(t, c.SetGreens(greens))
	for _, y := range yellows {
		require.NoError(t, c.AddYellow(y))
	}
	require.NoError(t, c.AddBlacks(blacks))
	return c.Snapshot()
}

func TestFilter_NoConstraints(t *testing.T) {
	words := loadCorpus(t)
	got := Filter(NewConstraints().Snapshot(), words)

	assert.Equal(t, words.Len(), got.SearchSpace)
	assert.Len(t, got.Items, words.Len())
	assert.Equal(t, []string{"about", "there", "world", "after", "while"}, Suggestions{Items: got.Top(5)}.Words())

	// Known frequencies descend, then unknown words follow in corpus order.
	var sawUnknown bool
	for i, s := range got.Items {
		if !s.Known {
			sawUnknown = true
			continue
		}
		require.False(t, sawUnknown, "known %q ranked after an unknown word", s.Word)
		if i > 0 {
			assert.GreaterOrEqual(t, got.Items[i-1].Frequency, s.Frequency)
		}
	}
	tail := Suggestions{Items: got.Items[len(got.Items)-3:]}.Words()
	assert.Equal(t, []string{"adieu", "apple", "soare"}, tail)
}

func TestFilter_Scenarios(t *testing.T) {
	words := loadCorpus(t)
	tests := []struct {
		name    string
		greens  string
		yellows []string
		blacks  string
		want    []string
	}{
		{
			name:   "green s, black e",
			greens: "s....",
			blacks: "e",
			want:   []string{"smart", "salty"},
		},
		{
			name:    "yellow r not second, green e last, black t",
			greens:  "....e",
			yellows: []string{".r..."},
			blacks:  "t",
			want:    []string{"share", "raise", "spare", "shore", "soare"},
		},
		{
			name:    "two yellow rounds",
			greens:  ".....",
			yellows: []string{"a....", "...a."},
			blacks:  "e",
			want:    []string{"plant", "smart", "paint", "chair", "candy", "cabin", "roast", "mango", "salty", "vapor"},
		},
		{
			name:   "full word",
			greens: "crane",
			want:   []string{"crane"},
		},
		{
			name:   "nothing matches",
			greens: "zz...",
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(constraintsFor(t, tt.greens, tt.yellows, tt.blacks), words)
			if diff := cmp.Diff(tt.want, got.Words()); diff != "" {
				t.Errorf("Filter() words mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), got.SearchSpace)
		})
	}
}

func TestFilter_Properties(t *testing.T) {
	words := loadCorpus(t)
	s := constraintsFor(t, "..a..", []string{"t....", "....e"}, "ionu")
	got := Filter(s, words)
	require.NotEmpty(t, got.Items)

	for _, it := range got.Items {
		w := it.Word
		for i := range WordLength {
			if ch, ok := s.Greens.At(i); ok {
				assert.Equal(t, ch, w[i], "%q green slot %d", w, i)
			}
		}
		for _, seq := range s.Yellows {
			for i := range WordLength {
				if ch, ok := seq.At(i); ok {
					assert.Contains(t, w, string(ch), "%q missing yellow letter", w)
					assert.NotEqual(t, ch, w[i], "%q has yellow letter at slot %d", w, i)
				}
			}
		}
		assert.False(t, strings.ContainsAny(w, s.Blacks.String()), "%q has a black letter", w)
	}
}

func TestFilter_DedupAndUnknownOrder(t *testing.T) {
	c := mapCorpus{
		words: []string{"zesty", "apple", "crane", "apple", "bread", "toolong", "abc"},
		freq:  map[string]int64{"crane": 5, "bread": 5, "apple": 9},
	}
	got := Filter(NewConstraints().Snapshot(), c)

	want := []Suggestion{
		{Word: "apple", Frequency: 9, Known: true},
		{Word: "crane", Frequency: 5, Known: true},
		{Word: "bread", Frequency: 5, Known: true},
		{Word: "zesty"},
	}
	if diff := cmp.Diff(want, got.Items); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	// Neither duplicates nor words of other lengths count toward the search space.
	assert.Equal(t, 4, got.SearchSpace)
}

func TestFilter_Idempotent(t *testing.T) {
	words := loadCorpus(t)
	s := constraintsFor(t, ".....", []string{".a..."}, "o")
	first := Filter(s, words)
	second := Filter(s, words)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Filter() differs (-first +second):\n%s", diff)
	}
}

func TestSuggestions_Top(t *testing.T) {
	s := Suggestions{Items: []Suggestion{{Word: "a"}, {Word: "b"}, {Word: "c"}}}
	assert.Len(t, s.Top(2), 2)
	assert.Len(t, s.Top(10), 3)
	assert.Len(t, s.Top(-1), 3)
	assert.Empty(t, s.Top(0))
}

func TestSuggestion_FrequencyString(t *testing.T) {
	assert.Equal(t, "42", Suggestion{Word: "x", Frequency: 42, Known: true}.FrequencyString())
	assert.Equal(t, "", Suggestion{Word: "x"}.FrequencyString())
}
