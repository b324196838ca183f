package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Stats summarises a build from a word list.
type Stats struct {
	Lines    int
	Inserted int
	Skipped  int
}

// Option configures a Trie. The With* methods have this shape, so
// (*Trie).WithNormalisation can be passed as is.
type Option func(*Trie) *Trie

// LogTo returns an Option that sets the logger used while building.
func LogTo(logger zerolog.Logger) Option {
	return func(t *Trie) *Trie { return t.WithLogger(logger) }
}

// FromWordList creates a new Trie from the file at path, one word per line.
// The options are applied before any line is read.
func FromWordList(path string, opts ...Option) (*Trie, error) {
	t := New()
	for _, opt := range opts {
		t = opt(t)
	}
	if _, err := t.BuildFile(path); err != nil {
		return nil, err
	}
	return t, nil
}

// BuildFile inserts every line of the file at path. Failing to open or read
// the file is an error; a line that cannot be inserted is logged and skipped.
func (t *Trie) BuildFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	stats, err := t.Build(f)
	if err != nil {
		return stats, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return stats, nil
}

// Build inserts every line read from r. Lines may end in \n or \r\n.
// A line that cannot be inserted is logged at warn level and skipped; only a
// failure of r itself is returned.
func (t *Trie) Build(r io.Reader) (Stats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if err := t.insertInternal(line); err != nil {
			stats.Skipped++
			t.logger.Warn().
				Int("line", stats.Lines).
				Str("word", line).
				Err(err).
				Msg("skipping word")
			continue
		}
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	t.logger.Info().
		Int("lines", stats.Lines).
		Int("inserted", stats.Inserted).
		Int("skipped", stats.Skipped).
		Msg("built trie")
	return stats, nil
}
