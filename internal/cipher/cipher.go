// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package cipher implements the Caesar shift over the 26-letter Latin
// alphabet. Upper and lower case letters rotate within their own ring and
// every other character passes through untouched.
package cipher // import "github.com/toeirei/caesar/internal/cipher"

import "strings"

const (
	// Alphabet is the size of the letter ring.
	Alphabet = 26
	// MinKey and MaxKey bound the non-trivial shift keys.
	MinKey = 1
	MaxKey = Alphabet - 1
)

// Shift moves c by k positions within its case ring. Non-letters are
// returned unchanged. k may be negative or larger than the alphabet.
func Shift(c rune, k int) rune {
	var base rune
	switch {
	case c >= 'A' && c <= 'Z':
		base = 'A'
	case c >= 'a' && c <= 'z':
		base = 'a'
	default:
		return c
	}
	offset := (int(c-base) + k) % Alphabet
	if offset < 0 {
		offset += Alphabet
	}
	return base + rune(offset)
}

// Apply shifts every letter of text by k. The text is walked byte by byte
// so bytes that are not valid UTF-8 survive unchanged.
func Apply(text string, k int) string {
	b := []byte(text)
	for i, c := range b {
		if isLetter(rune(c)) {
			b[i] = byte(Shift(rune(c), k))
		}
	}
	return string(b)
}

// Encrypt shifts text forward by key.
func Encrypt(text string, key int) string {
	return Apply(text, key)
}

// Decrypt reverses Encrypt for the same key.
func Decrypt(text string, key int) string {
	return Apply(text, -key)
}

// ContainsLetters reports whether text holds at least one ASCII letter.
func ContainsLetters(text string) bool {
	return strings.IndexFunc(text, isLetter) >= 0
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
