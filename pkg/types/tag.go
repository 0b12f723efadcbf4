// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across repograph packages.
package types

// TagKind distinguishes symbol definitions from references.
type TagKind int

const (
	Definition TagKind = iota
	Reference
)

// String returns the short wire name of the tag kind.
func (k TagKind) String() string {
	switch k {
	case Definition:
		return "def"
	case Reference:
		return "ref"
	default:
		return "unknown"
	}
}

// Tag is a single definition or reference occurrence of a named symbol
// at a specific file and line. Tags are produced fresh per run by the
// extractor and never mutated.
type Tag struct {
	File    string  // Path relative to the repository root; stable within a run
	AbsPath string  // Absolute path, for reading content
	Line    int     // Line number (1-based)
	Name    string  // Identifier text
	Kind    TagKind // Definition or Reference
	Subkind string  // Display classifier: class, function, method, call, type
}

// RankedTag pairs a tag with its final relevance score
// (file rank times context boosts).
type RankedTag struct {
	Score float64
	Tag   Tag
}
