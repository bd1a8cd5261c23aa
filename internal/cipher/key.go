// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import "math/rand/v2"

// KeySource yields integers in [0,n). *rand.Rand satisfies it.
type KeySource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultKeySource draws from the process-wide math/rand/v2 generator.
var DefaultKeySource KeySource = globalSource{}

// RandomKey picks a key uniformly from [MinKey, MaxKey].
func RandomKey(src KeySource) int {
	if src == nil {
		src = DefaultKeySource
	}
	return src.IntN(MaxKey-MinKey+1) + MinKey
}
