/*
Package trie provides a prefix tree over a word list and an anagram solver
that walks the tree and a multiset of letters in lockstep.

Letters are case-insensitive ASCII a-z. The search input may also contain
'?' wildcards, each of which stands in for any single letter. Optional
normalisation folds accented dictionary entries to their base letters, so
café is stored as cafe.
*/
package trie
