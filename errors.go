package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrNonAlphabeticIndex is returned when a word handed to the trie contains
	// a character that has no letter slot.
	ErrNonAlphabeticIndex = errors.New("trie: non-alphabetic index")
	// ErrNonAlphabeticInput is returned when a search string contains anything
	// other than letters and wildcards.
	ErrNonAlphabeticInput = errors.New("trie: non-alphabetic input")
	// ErrEmptyWord is returned when inserting the empty string.
	ErrEmptyWord = errors.New("trie: empty word")
)

// InputError describes the first invalid character of a search string.
type InputError struct {
	Input  string
	Char   rune
	Offset int
}

// Error describes the offending character and where it was found.
func (e *InputError) Error() string {
	return fmt.Sprintf("trie: invalid character %q at offset %d in %q", e.Char, e.Offset, e.Input)
}

// Unwrap returns ErrNonAlphabeticInput.
func (e *InputError) Unwrap() error { return ErrNonAlphabeticInput }
