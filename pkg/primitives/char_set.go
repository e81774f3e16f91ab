package primitives

import "fmt"

// CharSet efficiently represents a set of board symbols.
type CharSet struct {
	available []bool
	min       rune
	count     int
}

func NewCharSet(min, max rune) *CharSet {
	return &CharSet{
		available: make([]bool, max-min+1),
		min:       min,
		count:     0,
	}
}

// DefaultCharSet is the symbol space of a board.
// It includes all ASCII characters from a to z, plus '`' (backtick), the Qu tile.
func DefaultCharSet() *CharSet {
	return NewCharSet(QuTile, 'z')
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !c.inRange(r) {
		return fmt.Errorf("character %q is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// Contains checks if a character is in the set. Characters outside the
// set's range are never contained.
func (c *CharSet) Contains(r rune) bool {
	return c.inRange(r) && c.available[r-c.min]
}

// ContainsAll reports whether every rune of s is in the set.
func (c *CharSet) ContainsAll(s string) bool {
	for _, r := range s {
		if !c.Contains(r) {
			return false
		}
	}
	return true
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// String lists the members in ascending order.
func (c *CharSet) String() string {
	out := make([]rune, 0, c.count)
	for i, ok := range c.available {
		if ok {
			out = append(out, c.min+rune(i))
		}
	}
	return string(out)
}

func (c *CharSet) inRange(r rune) bool {
	return r >= c.min && r <= c.min+rune(len(c.available)-1)
}
