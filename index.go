package trie

import "fmt"

const alphabetSize = 26

// letterIndex maps an ASCII letter of either case to its slot 0-25.
func letterIndex(r rune) (int, error) {
	switch {
	case 'a' <= r && r <= 'z':
		return int(r - 'a'), nil
	case 'A' <= r && r <= 'Z':
		return int(r - 'A'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNonAlphabeticIndex, r)
}

func letterAt(i int) rune {
	return rune('a' + i)
}
