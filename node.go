package trie

import "unicode/utf8"

// node is a slot in the arena. A child value of zero means no child; the
// root lives at index zero and is never anyone's child.
type node struct {
	children [alphabetSize]uint32
	word     bool
}

// arena owns every node of a trie. Nodes are only ever appended.
type arena struct {
	nodes []node
}

func newArena() *arena {
	return &arena{nodes: make([]node, 1)}
}

// get returns the child of n for letter r, if there is one.
func (a *arena) get(n uint32, r rune) (uint32, bool, error) {
	i, err := letterIndex(r)
	if err != nil {
		return 0, false, err
	}
	child := a.nodes[n].children[i]
	return child, child != 0, nil
}

// getOrCreate returns the child of n for letter r, allocating it on first use.
func (a *arena) getOrCreate(n uint32, r rune) (uint32, error) {
	i, err := letterIndex(r)
	if err != nil {
		return 0, err
	}
	if child := a.nodes[n].children[i]; child != 0 {
		return child, nil
	}
	a.nodes = append(a.nodes, node{})
	child := uint32(len(a.nodes) - 1)
	a.nodes[n].children[i] = child
	return child, nil
}

// insert descends from n one letter at a time and marks the node reached
// when rest runs out.
func (a *arena) insert(n uint32, rest string) error {
	if rest == "" {
		a.nodes[n].word = true
		return nil
	}
	r, size := utf8.DecodeRuneInString(rest)
	child, err := a.getOrCreate(n, r)
	if err != nil {
		return err
	}
	return a.insert(child, rest[size:])
}

// find reports whether rest spells a word below n. A missing child is not an
// error.
func (a *arena) find(n uint32, rest string) (bool, error) {
	if rest == "" {
		return a.nodes[n].word, nil
	}
	r, size := utf8.DecodeRuneInString(rest)
	child, ok, err := a.get(n, r)
	if err != nil || !ok {
		return false, err
	}
	return a.find(child, rest[size:])
}

// anagrams appends to out every word below n that can be spelled from
// letters, each prefixed with prefix. The word at n itself comes first,
// then each child's results in alphabetical order.
func (a *arena) anagrams(n uint32, letters Letters, prefix []byte, out []string) []string {
	nd := &a.nodes[n]
	if nd.word {
		out = append(out, string(prefix))
	}
	for r, rest := range letters.All() {
		child := nd.children[r-'a']
		if child == 0 {
			continue
		}
		out = a.anagrams(child, rest, append(prefix, byte(r)), out)
	}
	return out
}

// nodeCount returns 1 plus the node count of every child of n.
func (a *arena) nodeCount(n uint32) int {
	count := 1
	for _, child := range a.nodes[n].children {
		if child != 0 {
			count += a.nodeCount(child)
		}
	}
	return count
}

func (a *arena) wordCount(n uint32) int {
	count := 0
	if a.nodes[n].word {
		count++
	}
	for _, child := range a.nodes[n].children {
		if child != 0 {
			count += a.wordCount(child)
		}
	}
	return count
}
