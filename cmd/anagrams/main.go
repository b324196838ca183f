// Command anagrams prints every dictionary word that can be made from the
// letters given on the command line.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-anagram-trie"
	"github.com/sarthakjha889/go-anagram-trie/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "Argument is missing! Input can contain alphabetic characters and ? as wildcard characters.")
		printExamples(stdout)
		return 2
	}
	input := args[0]
	if err := trie.ValidInput(input); err != nil {
		fmt.Fprintf(stdout, "Argument '%s' is invalid! Input can contain alphabetic characters and ? as wildcard characters.\n", input)
		printExamples(stdout)
		return 2
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}
	level, _ := cfg.Log.ZerologLevel()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	t := trie.New().WithLogger(logger)
	if cfg.Dictionary.Normalise {
		t.WithNormalisation()
	}

	start := time.Now()
	if _, err := t.BuildFile(cfg.Dictionary.Path); err != nil {
		logger.Error().Err(err).Msg("failed to build trie")
		return 1
	}
	logger.Info().
		Str("path", cfg.Dictionary.Path).
		Int("nodes", t.NodeCount()).
		Dur("elapsed", time.Since(start)).
		Msg("trie ready")

	start = time.Now()
	words, err := t.Anagrams(input)
	if err != nil {
		logger.Error().Err(err).Msg("failed to solve for anagrams")
		return 1
	}
	logger.Info().
		Str("letters", input).
		Int("found", len(words)).
		Dur("elapsed", time.Since(start)).
		Msg("solved")

	trie.SortByLength(words)
	for _, word := range words {
		if len(word) >= cfg.Output.MinLength {
			fmt.Fprintln(stdout, word)
		}
	}
	return 0
}

func printExamples(w io.Writer) {
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "\tanagrams alphabetize")
	fmt.Fprintln(w, "\tanagrams blue???")
}
