package primitives

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	minLetter = 'a'
	maxLetter = 'z'

	// NumLetters is the size of the alphabet a CharSet can hold.
	NumLetters = maxLetter - minLetter + 1
)

// CharSet efficiently represents a set of lowercase letters.
type CharSet struct {
	bits *bitset.BitSet
}

// NewCharSet returns an empty set over 'a' through 'z'.
func NewCharSet() *CharSet {
	return &CharSet{bits: bitset.New(NumLetters)}
}

// CharSetOf returns a set holding every letter of s.
func CharSetOf(s string) (*CharSet, error) {
	c := NewCharSet()
	if err := c.AddString(s); err != nil {
		return nil, err
	}
	return c, nil
}

// IsLetter reports whether r can be stored in a CharSet.
func IsLetter(r rune) bool {
	return r >= minLetter && r <= maxLetter
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !IsLetter(r) {
		return fmt.Errorf("character %q is out of range", r)
	}
	c.bits.Set(uint(r - minLetter))
	return nil
}

// AddString adds every character of s, stopping at the first one out of range.
func (c *CharSet) AddString(s string) error {
	for _, r := range s {
		if err := c.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	c.bits.InPlaceUnion(other.bits)
}

// Remove drops r from the set. Letters out of range are ignored.
func (c *CharSet) Remove(r rune) {
	if IsLetter(r) {
		c.bits.Clear(uint(r - minLetter))
	}
}

// Contains checks if a character is in the set.
func (c *CharSet) Contains(r rune) bool {
	if !IsLetter(r) {
		return false
	}
	return c.bits.Test(uint(r - minLetter))
}

// ContainsAny reports whether any character of s is in the set.
func (c *CharSet) ContainsAny(s string) bool {
	for _, r := range s {
		if c.Contains(r) {
			return true
		}
	}
	return false
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.Count() == NumLetters
}

// IsEmpty checks if the set has no characters.
func (c *CharSet) IsEmpty() bool {
	return c.bits.None()
}

// Capacity returns the number of characters that can be added to the set.
func (c *CharSet) Capacity() int {
	return NumLetters
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return int(c.bits.Count())
}

// Letters returns the members in alphabetical order.
func (c *CharSet) Letters() []rune {
	out := make([]rune, 0, c.Count())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		out = append(out, minLetter+rune(i))
	}
	return out
}

// Clone returns an independent copy of the set.
func (c *CharSet) Clone() *CharSet {
	return &CharSet{bits: c.bits.Clone()}
}

// Equal reports whether both sets hold the same letters.
func (c *CharSet) Equal(other *CharSet) bool {
	return c.bits.Equal(other.bits)
}

// String renders the members in alphabetical order, e.g. "aet".
func (c *CharSet) String() string {
	var b strings.Builder
	for _, r := range c.Letters() {
		b.WriteRune(r)
	}
	return b.String()
}
