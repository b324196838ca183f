package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDictionary(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ANAGRAMS_DICTIONARY_PATH", path)
}

func TestRun(t *testing.T) {
	t.Setenv("ANAGRAMS_LOG_LEVEL", "error")

	t.Run("Missing argument prints usage", func(t *testing.T) {
		var out bytes.Buffer
		assert.Equal(t, 2, run(nil, &out))
		assert.Contains(t, out.String(), "Argument is missing!")
		assert.Contains(t, out.String(), "Examples:")
		assert.Contains(t, out.String(), "anagrams alphabetize")
		assert.Contains(t, out.String(), "anagrams blue???")
	})

	t.Run("Invalid argument prints usage without reading the dictionary", func(t *testing.T) {
		t.Setenv("ANAGRAMS_DICTIONARY_PATH", filepath.Join(t.TempDir(), "none.txt"))
		var out bytes.Buffer
		assert.Equal(t, 2, run([]string{"bl u3"}, &out))
		assert.Contains(t, out.String(), "Argument 'bl u3' is invalid!")
		assert.Contains(t, out.String(), "anagrams blue???")
	})

	t.Run("Missing dictionary", func(t *testing.T) {
		t.Setenv("ANAGRAMS_DICTIONARY_PATH", filepath.Join(t.TempDir(), "none.txt"))
		var out bytes.Buffer
		assert.Equal(t, 1, run([]string{"cat"}, &out))
		assert.Empty(t, out.String())
	})

	t.Run("Prints words shortest first", func(t *testing.T) {
		writeDictionary(t, "cat\nact\nca\n")
		var out bytes.Buffer
		assert.Equal(t, 0, run([]string{"ca?"}, &out))
		assert.Equal(t, "ca\nact\ncat\n", out.String())
	})

	t.Run("Minimum length filters short words", func(t *testing.T) {
		writeDictionary(t, "cat\nact\nca\n")
		t.Setenv("ANAGRAMS_OUTPUT_MIN_LENGTH", "3")
		var out bytes.Buffer
		assert.Equal(t, 0, run([]string{"ca?"}, &out))
		assert.Equal(t, "act\ncat\n", out.String())
	})
}
