// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_Empty(t *testing.T) {
	assert.Equal(t, 0, Estimate(""))
}

func TestEstimate_ShortTextIsExact(t *testing.T) {
	text := strings.Repeat("a", 100)
	assert.Equal(t, 25, Estimate(text))
}

func TestEstimate_LargeTextScalesWithSize(t *testing.T) {
	line := "const answer = 42 // some representative line\n"
	small := strings.Repeat(line, 100)
	large := strings.Repeat(line, 1000)

	smallTokens := Estimate(small)
	largeTokens := Estimate(large)

	assert.Greater(t, largeTokens, smallTokens)
	// Uniform lines extrapolate close to the direct count.
	assert.InEpsilon(t, len(large)/4, largeTokens, 0.1)
}

func TestEstimate_MonotonicOnPrefixes(t *testing.T) {
	var sb strings.Builder
	prev := 0
	for i := 0; i < 200; i++ {
		sb.WriteString("func generated() { return }\n")
		got := Estimate(sb.String())
		assert.GreaterOrEqual(t, got, prev, "token estimate shrank at %d lines", i+1)
		prev = got
	}
}
