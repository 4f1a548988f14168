package wordle

import (
	"fmt"
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

const (
	// MaxYellows is the number of yellow sequences a session can record.
	MaxYellows = 5

	// MaxBlacks is the number of distinct black letters a session can record.
	MaxBlacks = primitives.NumLetters - 1
)

// Constraints holds the green, yellow and black feedback gathered so far.
//
// Every mutation validates its input before touching any state, so a
// rejected call leaves the constraints exactly as they were.
type Constraints struct {
	greens  Pattern
	yellows []Pattern
	blacks  *primitives.CharSet
}

// NewConstraints returns constraints that match every word.
func NewConstraints() *Constraints {
	return &Constraints{
		greens: EmptyPattern,
		blacks: primitives.NewCharSet(),
	}
}

// SetGreens replaces the green pattern, e.g. "s..r.".
//
// Yellow and black letters that conflict with the new pattern are left alone.
func (c *Constraints) SetGreens(pattern string) error {
	p, err := parsePattern("SetGreens", pattern)
	if err != nil {
		return err
	}
	c.greens = p
	return nil
}

// AddYellow appends a yellow sequence, e.g. ".a..e".
func (c *Constraints) AddYellow(sequence string) error {
	p, err := parsePattern("AddYellow", sequence)
	if err != nil {
		return err
	}
	if len(c.yellows) >= MaxYellows {
		return invalid("AddYellow", sequence, fmt.Sprintf("already holding %d yellow sequences", MaxYellows))
	}
	c.yellows = append(c.yellows, p)
	return nil
}

// ResetYellows drops every yellow sequence.
func (c *Constraints) ResetYellows() {
	c.yellows = nil
}

// AddBlacks merges letters into the black set.
//
// After merging, a letter is dropped if it is one of the greens. When yellow
// sequences exist, a letter is kept only if at least one sequence lacks it.
// The same rule is applied to letters already in the set.
func (c *Constraints) AddBlacks(letters string) error {
	merged := c.blacks.Clone()
	pos := 0
	for _, r := range letters {
		pos++
		if err := merged.Add(r); err != nil {
			return invalid("AddBlacks", letters, fmt.Sprintf("character %q at position %d is not a lowercase letter", r, pos))
		}
	}
	if merged.Count() > MaxBlacks {
		return invalid("AddBlacks", letters, fmt.Sprintf("would hold %d black letters, at most %d allowed", merged.Count(), MaxBlacks))
	}

	for _, r := range merged.Letters() {
		if !c.blackAllowed(r) {
			merged.Remove(r)
		}
	}
	c.blacks = merged
	return nil
}

func (c *Constraints) blackAllowed(r rune) bool {
	if c.greens.Contains(r) {
		return false
	}
	if len(c.yellows) == 0 {
		return true
	}
	for _, seq := range c.yellows {
		if !seq.Contains(r) {
			return true
		}
	}
	return false
}

// ResetBlacks empties the black set.
func (c *Constraints) ResetBlacks() {
	c.blacks = primitives.NewCharSet()
}

// Greens returns the green pattern, e.g. "s..r.".
func (c *Constraints) Greens() string {
	return c.greens.Repr()
}

// KnownGreens counts the confirmed positions.
func (c *Constraints) KnownGreens() int {
	return c.greens.Known()
}

// Yellows returns the yellow sequences in the order they were added.
func (c *Constraints) Yellows() []string {
	out := make([]string, len(c.yellows))
	for i, p := range c.yellows {
		out[i] = p.Repr()
	}
	return out
}

// YellowsDisplay joins the yellow sequences with spaces.
func (c *Constraints) YellowsDisplay() string {
	return strings.Join(c.Yellows(), " ")
}

// Blacks returns the black letters in alphabetical order.
func (c *Constraints) Blacks() string {
	return c.blacks.String()
}

// Snapshot copies the current constraints for filtering.
func (c *Constraints) Snapshot() Snapshot {
	return Snapshot{
		Greens:  c.greens,
		Yellows: append([]Pattern(nil), c.yellows...),
		Blacks:  c.blacks.Clone(),
	}
}

// Snapshot is an immutable copy of Constraints.
type Snapshot struct {
	Greens  Pattern
	Yellows []Pattern
	Blacks  *primitives.CharSet
}
