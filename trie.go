package trie

import (
	"fmt"
	"sort"
	"sync"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie is a prefix tree of words over the letters a-z, built once and then
// searched for anagrams of a set of letters.
type Trie struct {
	nodes      *arena
	mu         sync.RWMutex
	normalised bool
	logger     zerolog.Logger
}

// New creates a new empty trie. Normalisation is off and nothing is logged.
func New() *Trie {
	t := new(Trie)
	t.nodes = newArena()
	t.logger = zerolog.Nop()
	t.WithoutNormalisation()
	return t
}

// WithNormalisation sets the Trie to strip diacritics from words before they
// are inserted or looked up. For example, café is stored as cafe.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to reject any word containing a
// character outside a-z and A-Z.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// WithLogger sets the logger used while building from a word list.
func (t *Trie) WithLogger(logger zerolog.Logger) *Trie {
	t.logger = logger
	return t
}

// Insert inserts words into the Trie. It stops at the first word that cannot
// be stored and returns its error; words before it remain inserted.
func (t *Trie) Insert(words ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		if err := t.insertInternal(word); err != nil {
			return err
		}
	}
	return nil
}

// insertInternal performs the actual insertion without locking. The word is
// checked in full first so a bad word leaves no dangling nodes behind.
func (t *Trie) insertInternal(word string) error {
	word, err := t.normalise(word)
	if err != nil {
		return fmt.Errorf("inserting %q: %w", word, err)
	}
	if word == "" {
		return ErrEmptyWord
	}
	for _, r := range word {
		if _, err := letterIndex(r); err != nil {
			return fmt.Errorf("inserting %q: %w", word, err)
		}
	}
	return t.nodes.insert(0, word)
}

// Find reports whether word was inserted. Case is ignored. A character
// outside a-z fails with ErrNonAlphabeticIndex.
func (t *Trie) Find(word string) (bool, error) {
	word, err := t.normalise(word)
	if err != nil {
		return false, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes.find(0, word)
}

// Anagrams returns every word in the Trie that can be spelled from letters,
// using each letter at most once and each '?' as any one letter. Not every
// letter has to be used. Words come back in search order: a word before the
// words it prefixes, siblings alphabetically. No word appears twice.
func (t *Trie) Anagrams(letters string) ([]string, error) {
	set, err := ParseLetters(letters)
	if err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes.anagrams(0, set, make([]byte, 0, set.Len()), []string{}), nil
}

// NodeCount returns the number of nodes in the Trie, root included.
func (t *Trie) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes.nodeCount(0)
}

// WordCount returns the number of distinct words in the Trie.
func (t *Trie) WordCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes.wordCount(0)
}

// normalise removes combining marks when normalisation is on.
func (t *Trie) normalise(word string) (string, error) {
	if !t.normalised {
		return word, nil
	}
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, word)
	if err != nil {
		return word, err
	}
	return normal, nil
}

// SortByLength orders words shortest first. Words of equal length keep their
// relative order.
func SortByLength(words []string) {
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) < len(words[j])
	})
}
