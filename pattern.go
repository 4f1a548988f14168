package wordle

import (
	"fmt"

	"crosswarped.com/wordle/pkg/primitives"
)

const (
	// WordLength is the only word length the solver supports.
	WordLength = 5

	// Wildcard marks a slot with no constraint.
	Wildcard = '.'
)

// Pattern is a fixed five-slot sequence of lowercase letters and wildcards.
//
// It backs both the green pattern (letter confirmed at a slot) and every
// yellow sequence (letter present, but not at that slot).
type Pattern [WordLength]byte

// EmptyPattern is a pattern of wildcards only.
var EmptyPattern = Pattern{Wildcard, Wildcard, Wildcard, Wildcard, Wildcard}

func parsePattern(op, s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLength {
		return p, invalid(op, s, fmt.Sprintf("must be exactly %d characters", WordLength))
	}
	for i := range WordLength {
		ch := s[i]
		if ch != Wildcard && !primitives.IsLetter(rune(ch)) {
			return p, invalid(op, s, fmt.Sprintf("character %q at position %d is not a lowercase letter or %q", ch, i+1, Wildcard))
		}
		p[i] = ch
	}
	return p, nil
}

// At returns the letter at slot i, or false for a wildcard.
func (p Pattern) At(i int) (byte, bool) {
	if p[i] == Wildcard {
		return 0, false
	}
	return p[i], true
}

// Known counts the lettered slots.
func (p Pattern) Known() int {
	n := 0
	for _, ch := range p {
		if ch != Wildcard {
			n++
		}
	}
	return n
}

// Contains reports whether r appears in any slot.
func (p Pattern) Contains(r rune) bool {
	for _, ch := range p {
		if ch != Wildcard && rune(ch) == r {
			return true
		}
	}
	return false
}

// Letters adds the lettered slots to accumulate.
func (p Pattern) Letters(accumulate *primitives.CharSet) {
	for _, ch := range p {
		if ch != Wildcard {
			// Parsed patterns only hold a-z.
			_ = accumulate.Add(rune(ch))
		}
	}
}

func (p Pattern) Repr() string {
	return string(p[:])
}

func (p Pattern) DebugString() string {
	return fmt.Sprintf("Pattern{known: %d, slots: %q}", p.Known(), p.Repr())
}
