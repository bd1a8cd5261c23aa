// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package detect guesses Caesar keys and user intent by scoring text against
// a dictionary.
package detect // import "github.com/toeirei/caesar/internal/detect"

import (
	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/dictionary"
)

// EncryptThreshold is the fraction of recognised words above which freeform
// input is treated as plaintext. The comparison is strict.
const EncryptThreshold = 0.25

// Mode is the action chosen for freeform input.
type Mode int

const (
	ModeDecrypt Mode = iota
	ModeEncrypt
)

func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	default:
		return "decrypt"
	}
}

// Ranked is the dictionary score of text decrypted with Key.
type Ranked struct {
	Key  int
	Rank int
}

// Candidate is text decrypted with Key, kept for manual inspection.
type Candidate struct {
	Key  int
	Text string
}

// Rankings scores every decryption key from 0 through 25 in ascending order.
func Rankings(text string, words *dictionary.WordSet) []Ranked {
	out := make([]Ranked, 0, cipher.Alphabet)
	for k := 0; k < cipher.Alphabet; k++ {
		out = append(out, Ranked{Key: k, Rank: dictionary.Score(cipher.Decrypt(text, k), words)})
	}
	return out
}

// DetectKey returns the decryption key whose output contains the most
// dictionary words. Ties go to the lowest key. ok is false when no key
// produces a single recognised word, which is always the case for an empty
// dictionary.
func DetectKey(text string, words *dictionary.WordSet) (key int, ok bool) {
	best := Ranked{Key: -1}
	for _, r := range Rankings(text, words) {
		if r.Rank > best.Rank {
			best = r
		}
	}
	if best.Rank == 0 {
		return 0, false
	}
	return best.Key, true
}

// Ratio is the share of space-delimited tokens in text that are dictionary
// words.
func Ratio(text string, words *dictionary.WordSet) float64 {
	return float64(dictionary.Score(text, words)) / float64(dictionary.WordCount(text))
}

// DetectMode decides whether freeform text is plaintext to encrypt or
// ciphertext to decrypt. Without a dictionary the ratio is always zero, so
// the answer is always ModeDecrypt.
func DetectMode(text string, words *dictionary.WordSet) Mode {
	if Ratio(text, words) > EncryptThreshold {
		return ModeEncrypt
	}
	return ModeDecrypt
}

// Candidates lists text decrypted with every non-trivial key, 1 through 25.
func Candidates(text string) []Candidate {
	out := make([]Candidate, 0, cipher.MaxKey)
	for k := cipher.MinKey; k <= cipher.MaxKey; k++ {
		out = append(out, Candidate{Key: k, Text: cipher.Decrypt(text, k)})
	}
	return out
}
