// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repomap defines the public interface for repograph, a
// tree-sitter based repository mapping and symbol navigation library.
package repomap

import (
	"context"
	"errors"

	"github.com/petar-djukic/repograph/pkg/types"
)

// Error types for the Mapper API.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Mapper instance.
type Config struct {
	Root        string   // Repository root (required)
	MaxTokens   int      // Token budget for repository maps (default 8192)
	Excludes    []string // Extra gitignore-style exclude patterns
	Concurrency int      // File readers (default: number of CPUs)
	Verbose     bool     // Enable debug logging
}

// MapRequest describes one repository map query.
type MapRequest struct {
	Paths           []string // Files or directories; empty maps the root
	FocusFiles      []string // Files whose neighborhoods matter most
	MentionedIdents []string // Identifiers to boost
	MaxTokens       int      // Override the configured budget (0 = keep it)
	Excludes        []string // Extra exclude patterns for this call
}

// MapResult holds a rendered repository map and its corpus statistics.
type MapResult struct {
	Map    string
	Report types.FileReport
}

// FindRequest describes a symbol lookup.
type FindRequest struct {
	Symbols         []string // Symbol names to locate (required)
	Paths           []string // Corpus to search; empty searches the root
	SourceFile      string   // File the query originates from, if any
	IncludeSnippets bool     // Attach the literal source line per hit
	Excludes        []string // Extra exclude patterns for this call
}

// Mapper builds repository maps and locates symbols.
type Mapper interface {
	// RepoMap renders an importance-ranked map of the corpus that fits
	// the token budget.
	RepoMap(ctx context.Context, req MapRequest) (*MapResult, error)

	// Find locates the definitions and references of each requested
	// symbol. Symbols without hits are reported as not found inside the
	// result, never as an error.
	Find(ctx context.Context, req FindRequest) (*types.MultiSymbolNavigation, error)

	// FindSymbol is the single-symbol form of Find.
	FindSymbol(ctx context.Context, symbol string, req FindRequest) (*types.SymbolNavigation, error)

	// Renderer returns the snippet renderer paired with this Mapper,
	// for turning navigation results into text.
	Renderer() types.ContextRenderer
}
