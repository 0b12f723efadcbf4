// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// FileReport summarizes one ranking pass over a file set. The counts
// cover every tag scanned, not just the tags that survived the kind
// filter, so they describe the corpus rather than the query.
type FileReport struct {
	DefinitionMatches    int // Definition tags seen across all files
	ReferenceMatches     int // Reference tags seen across all files
	TotalFilesConsidered int // Files that entered the ranking pass
}

// TokenCountFunc estimates the token cost of a rendered text. It must be
// (approximately) monotonic non-decreasing in text length; the budget
// search relies on that.
type TokenCountFunc func(text string) int

// RenderFunc renders a file excerpt around the given 1-based lines of
// interest. An empty return means the file produced no viable excerpt
// and should be dropped from the output.
type RenderFunc func(file, content string, lines []int) string
