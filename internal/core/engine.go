// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package core ties the cipher, the dictionary and the detectors together
// into the encrypt and decrypt flows shared by the line shell and the TUI.
package core // import "github.com/toeirei/caesar/internal/core"

import (
	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/detect"
	"github.com/toeirei/caesar/internal/dictionary"
	"github.com/toeirei/caesar/internal/logging"
)

// Outcome describes how a decryption request was resolved.
type Outcome int

const (
	// OutcomeDetected means a key was found and Text holds the plaintext.
	OutcomeDetected Outcome = iota
	// OutcomeUndetected means the dictionary recognised nothing under any key.
	OutcomeUndetected
	// OutcomeNoDictionary means no word list was available to try.
	OutcomeNoDictionary
)

// EncryptResult is the ciphertext produced under a random key.
type EncryptResult struct {
	Key  int
	Text string
}

// DecryptResult is the answer to a decryption request. Candidates is only
// filled for OutcomeUndetected and OutcomeNoDictionary.
type DecryptResult struct {
	Outcome    Outcome
	Key        int
	Text       string
	Candidates []detect.Candidate
}

// Engine runs the encrypt and decrypt flows against a fixed word set. It
// holds no mutable state and is safe to share.
type Engine struct {
	words *dictionary.WordSet
	keys  cipher.KeySource
}

// NewEngine returns an Engine over words. A nil words is treated as an empty
// dictionary; a nil keys uses cipher.DefaultKeySource.
func NewEngine(words *dictionary.WordSet, keys cipher.KeySource) *Engine {
	if words == nil {
		words = dictionary.Empty()
	}
	if keys == nil {
		keys = cipher.DefaultKeySource
	}
	return &Engine{words: words, keys: keys}
}

// Words returns the engine's dictionary.
func (e *Engine) Words() *dictionary.WordSet {
	return e.words
}

// HasDictionary reports whether any words were loaded.
func (e *Engine) HasDictionary() bool {
	return !e.words.IsEmpty()
}

// Encrypt shifts text by a random key in [1,25]. ok is false when text has
// no letters, in which case nothing should be shown.
func (e *Engine) Encrypt(text string) (EncryptResult, bool) {
	if !cipher.ContainsLetters(text) {
		return EncryptResult{}, false
	}
	key := cipher.RandomKey(e.keys)
	logging.Debugf("encrypting %d bytes with key %d", len(text), key)
	return EncryptResult{Key: key, Text: cipher.Encrypt(text, key)}, true
}

// Decrypt guesses the key for text. ok is false when text has no letters.
func (e *Engine) Decrypt(text string) (DecryptResult, bool) {
	if !cipher.ContainsLetters(text) {
		return DecryptResult{}, false
	}
	if !e.HasDictionary() {
		logging.Debugf("no dictionary loaded, listing every key")
		return DecryptResult{Outcome: OutcomeNoDictionary, Candidates: detect.Candidates(text)}, true
	}
	key, found := detect.DetectKey(text, e.words)
	if !found {
		logging.Debugf("no key produced a dictionary word")
		return DecryptResult{Outcome: OutcomeUndetected, Candidates: detect.Candidates(text)}, true
	}
	logging.Debugf("detected key %d", key)
	return DecryptResult{Outcome: OutcomeDetected, Key: key, Text: cipher.Decrypt(text, key)}, true
}

// Route decides whether freeform input should be encrypted or decrypted.
func (e *Engine) Route(text string) detect.Mode {
	mode := detect.DetectMode(text, e.words)
	logging.Debugf("freeform input routed to %s (ratio %.2f)", mode, detect.Ratio(text, e.words))
	return mode
}
