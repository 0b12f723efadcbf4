// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokens estimates token counts for budgeting rendered output.
package tokens

import "strings"

const (
	// bytesPerToken is the usual ratio for source text.
	bytesPerToken = 4

	// sampleThreshold is the size below which text is counted directly.
	sampleThreshold = 200

	// sampleLines is how many evenly spaced lines a large text is
	// sampled at before extrapolating.
	sampleLines = 100
)

// Estimate approximates the token count of text. Short text is counted
// directly; larger text is sampled line-wise and extrapolated by byte
// ratio, which keeps the budget binary search cheap on big trees.
func Estimate(text string) int {
	if len(text) < sampleThreshold {
		return len(text) / bytesPerToken
	}

	lines := strings.Split(text, "\n")
	step := len(lines) / sampleLines
	if step < 1 {
		step = 1
	}

	var sampled []string
	for i := 0; i < len(lines); i += step {
		sampled = append(sampled, lines[i])
	}
	sample := strings.Join(sampled, "\n")
	if len(sample) == 0 {
		return len(text) / bytesPerToken
	}

	sampleTokens := float64(len(sample)) / bytesPerToken
	scale := float64(len(text)) / float64(len(sample))
	return int(sampleTokens * scale)
}
