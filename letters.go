package trie

import (
	"iter"
	"strings"
)

// Wildcard is the search character that matches any single letter.
const Wildcard = '?'

// Letters is a multiset of the letters a-z plus a count of wildcards.
// Copies never share counts.
type Letters struct {
	counts [alphabetSize]int
	wild   int
}

// ParseLetters builds a multiset from s. Letters are case-insensitive and
// '?' counts as a wildcard. Any other character fails the whole parse with an
// *InputError wrapping ErrNonAlphabeticInput.
func ParseLetters(s string) (Letters, error) {
	var l Letters
	for offset, r := range s {
		if r == Wildcard {
			l.wild++
			continue
		}
		i, err := letterIndex(r)
		if err != nil {
			return Letters{}, &InputError{Input: s, Char: r, Offset: offset}
		}
		l.counts[i]++
	}
	return l, nil
}

// ValidInput reports whether s could be used as a search string.
func ValidInput(s string) error {
	_, err := ParseLetters(s)
	return err
}

// Contains reports whether every letter count of other is at most the
// matching count of l. Wildcards are ignored on both sides.
func (l Letters) Contains(other Letters) bool {
	for i := range l.counts {
		if other.counts[i] > l.counts[i] {
			return false
		}
	}
	return true
}

// Len returns the number of letters and wildcards left.
func (l Letters) Len() int {
	n := l.wild
	for _, c := range l.counts {
		n += c
	}
	return n
}

// Count returns how many of r remain. Count(Wildcard) is the wildcard count.
func (l Letters) Count(r rune) int {
	if r == Wildcard {
		return l.wild
	}
	i, err := letterIndex(r)
	if err != nil {
		return 0
	}
	return l.counts[i]
}

// Wildcards returns the number of wildcards left.
func (l Letters) Wildcards() int { return l.wild }

// String returns the letters in alphabetical order followed by one '?' per
// wildcard.
func (l Letters) String() string {
	var b strings.Builder
	b.Grow(l.Len())
	for i, c := range l.counts {
		for j := 0; j < c; j++ {
			b.WriteRune(letterAt(i))
		}
	}
	for j := 0; j < l.wild; j++ {
		b.WriteRune(Wildcard)
	}
	return b.String()
}

// All yields, in alphabetical order, each letter that can be placed next
// together with the multiset left once it is placed. A letter that is
// present is offered by consuming its own copy; only an absent letter is
// offered through a wildcard. No letter is offered twice, so the search
// never reaches the same word along two paths.
func (l Letters) All() iter.Seq2[rune, Letters] {
	return func(yield func(rune, Letters) bool) {
		for i := 0; i < alphabetSize; i++ {
			rest := l
			switch {
			case l.counts[i] > 0:
				rest.counts[i]--
			case l.wild > 0:
				rest.wild--
			default:
				continue
			}
			if !yield(letterAt(i), rest) {
				return
			}
		}
	}
}
