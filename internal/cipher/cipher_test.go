// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"math/rand/v2"
	"testing"
	"unicode"
)

func printableASCII() string {
	b := make([]byte, 0, 95)
	for c := byte(32); c < 127; c++ {
		b = append(b, c)
	}
	return string(b)
}

func TestShift_Table(t *testing.T) {
	cases := []struct {
		in   rune
		k    int
		want rune
	}{
		{'a', 1, 'b'},
		{'z', 1, 'a'},
		{'Z', 1, 'A'},
		{'A', -1, 'Z'},
		{'a', -27, 'z'},
		{'m', 26, 'm'},
		{'H', 3, 'K'},
		{'K', 23, 'H'},
		{' ', 5, ' '},
		{'7', 5, '7'},
		{'!', -3, '!'},
		{'é', 4, 'é'},
	}
	for _, c := range cases {
		if got := Shift(c.in, c.k); got != c.want {
			t.Errorf("Shift(%q, %d) = %q, want %q", c.in, c.k, got, c.want)
		}
	}
}

func TestShift_PreservesCase(t *testing.T) {
	for c := rune(32); c < 127; c++ {
		for k := -30; k <= 30; k++ {
			got := Shift(c, k)
			if !isLetter(c) {
				if got != c {
					t.Fatalf("non-letter %q changed to %q with k=%d", c, got, k)
				}
				continue
			}
			if unicode.IsUpper(c) != unicode.IsUpper(got) {
				t.Fatalf("case changed: %q -> %q with k=%d", c, got, k)
			}
		}
	}
}

func TestApply_RoundTrip(t *testing.T) {
	text := printableASCII()
	for k := MinKey; k <= MaxKey; k++ {
		if got := Apply(Apply(text, k), -k); got != text {
			t.Fatalf("round trip failed for k=%d: %q", k, got)
		}
		if got := Decrypt(Encrypt(text, k), k); got != text {
			t.Fatalf("Encrypt/Decrypt round trip failed for k=%d: %q", k, got)
		}
		// Decrypting by k equals shifting forward by 26-k.
		if Decrypt(text, k) != Apply(text, Alphabet-k) {
			t.Fatalf("Decrypt(k) != Apply(26-k) for k=%d", k)
		}
	}
}

func TestApply_InvalidUTF8(t *testing.T) {
	text := "caf\xe9 ok \xff\xfe"
	if got := Apply(text, 3); got != "fdi\xe9 rn \xff\xfe" {
		t.Fatalf("non-letter bytes were altered: %q", got)
	}
	for k := MinKey; k <= MaxKey; k++ {
		if got := Apply(Apply(text, k), -k); got != text {
			t.Fatalf("round trip failed for k=%d: %q", k, got)
		}
	}
}

func TestApply_IdentityAndPeriodicity(t *testing.T) {
	text := "The Quick Brown Fox, 42 jumps!"
	if Apply(text, 0) != text {
		t.Fatalf("Apply with key 0 changed the text")
	}
	for k := -60; k <= 60; k++ {
		if Apply(text, k) != Apply(text, k+Alphabet) {
			t.Fatalf("periodicity broken for k=%d", k)
		}
		if Apply(text, k) != Apply(text, k%Alphabet) {
			t.Fatalf("Apply(t,k) != Apply(t,k mod 26) for k=%d", k)
		}
	}
}

func TestEncrypt_KnownVector(t *testing.T) {
	if got := Encrypt("HELLO WORLD", 3); got != "KHOOR ZRUOG" {
		t.Fatalf("got %q", got)
	}
	if got := Decrypt("KHOOR ZRUOG", 3); got != "HELLO WORLD" {
		t.Fatalf("got %q", got)
	}
}

func TestContainsLetters(t *testing.T) {
	cases := map[string]bool{
		"":       false,
		"123 !?": false,
		"  x  ":  true,
		"ÄÖÜ":    false,
		"hello":  true,
		"42 Z":   true,
	}
	for in, want := range cases {
		if got := ContainsLetters(in); got != want {
			t.Errorf("ContainsLetters(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRandomKey_Range(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		k := RandomKey(src)
		if k < MinKey || k > MaxKey {
			t.Fatalf("key %d out of range", k)
		}
		seen[k] = true
	}
	if len(seen) != MaxKey-MinKey+1 {
		t.Fatalf("expected every key to be drawn, saw %d distinct", len(seen))
	}
}

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func TestRandomKey_Bounds(t *testing.T) {
	if got := RandomKey(fixedSource(0)); got != 1 {
		t.Fatalf("lowest draw should map to 1, got %d", got)
	}
	if got := RandomKey(fixedSource(24)); got != 25 {
		t.Fatalf("highest draw should map to 25, got %d", got)
	}
	if k := RandomKey(nil); k < MinKey || k > MaxKey {
		t.Fatalf("default source produced %d", k)
	}
}
