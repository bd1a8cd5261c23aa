// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package dictionary holds the known-word set used to judge whether a piece of
// text reads like English, and the loaders that build it from plain,
// compressed, or database-backed word lists.
package dictionary // import "github.com/toeirei/caesar/internal/dictionary"

import "strings"

// WordSet is an immutable set of lowercase words. A nil or empty WordSet is
// valid and simply recognises nothing.
type WordSet struct {
	words map[string]struct{}
}

// New builds a WordSet from the given words. Entries are trimmed and
// lowercased; blank entries are dropped.
func New(words ...string) *WordSet {
	s := &WordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.add(w)
	}
	return s
}

// Empty returns a WordSet with no entries.
func Empty() *WordSet {
	return &WordSet{words: map[string]struct{}{}}
}

func (s *WordSet) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return
	}
	s.words[w] = struct{}{}
}

// Contains reports whether the lowercase form of word is in the set.
func (s *WordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// IsEmpty reports whether the set holds no words.
func (s *WordSet) IsEmpty() bool {
	return s.Len() == 0
}

// Tokens splits text on single spaces. Consecutive spaces yield empty tokens
// and punctuation stays attached to its word.
func Tokens(text string) []string {
	return strings.Split(text, " ")
}

// WordCount returns the number of space-delimited tokens in text. It is never
// less than one.
func WordCount(text string) int {
	return len(Tokens(text))
}

// Score counts the tokens of text that are dictionary words, ignoring case.
// An empty set always scores zero.
func Score(text string, words *WordSet) int {
	if words.IsEmpty() {
		return 0
	}
	rank := 0
	for _, tok := range Tokens(text) {
		if words.Contains(tok) {
			rank++
		}
	}
	return rank
}
