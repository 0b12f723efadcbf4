// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolLocation is a single place a symbol appears.
type SymbolLocation struct {
	File    string // Path relative to the repository root
	Line    int    // Line number (1-based)
	Snippet string // Trimmed source line, best-effort ("" when unreadable)
}

// ContextRenderer renders file excerpts for navigation results. Definition
// excerpts get wider padding and parent scope; reference excerpts stay
// tight. Implementations must be pure: same inputs, same output.
type ContextRenderer interface {
	Definitions(file, content string, lines []int) string
	References(file, content string, lines []int) string
}

// RenderOptions controls navigation rendering. The zero value renders
// definitions only, with the summary header.
type RenderOptions struct {
	IncludeReferences bool
	OmitHeader        bool
}

// SymbolNavigation holds the definitions and references of one symbol,
// ordered by relevance. Files carries the content of every file that
// appears in the result, keyed by relative path, so the result can be
// rendered on demand.
type SymbolNavigation struct {
	Symbol      string
	Kind        string // Subkind of the top-ranked definition, or "unknown"
	Definitions []SymbolLocation
	References  []SymbolLocation
	SourceFile  string
	Files       map[string]string
}

// Found reports whether the symbol was seen anywhere, as a definition
// or a reference. A miss is a valid query outcome, not an error.
func (n SymbolNavigation) Found() bool {
	return len(n.Definitions) > 0 || len(n.References) > 0
}

// Render formats the navigation result with syntactic context.
func (n SymbolNavigation) Render(r ContextRenderer, opts RenderOptions) string {
	if !n.Found() {
		return fmt.Sprintf("Symbol %q not found.", n.Symbol)
	}

	var parts []string

	if !opts.OmitHeader {
		parts = append(parts,
			"Summary",
			strings.Repeat("=", 40),
			"",
			fmt.Sprintf("Symbol      : %s (%s)", n.Symbol, n.Kind),
		)
		if n.SourceFile != "" {
			parts = append(parts, fmt.Sprintf("Source file : %s", n.SourceFile))
		}
		parts = append(parts, fmt.Sprintf("Definitions : %d", len(n.Definitions)))
		if opts.IncludeReferences {
			parts = append(parts, fmt.Sprintf("References  : %d", len(n.References)))
		}
		parts = append(parts, "")
	}

	defFiles, defLines := groupLocations(n.Definitions)
	parts = append(parts,
		fmt.Sprintf("Definitions (%d total, %d %s)", len(n.Definitions), len(defFiles), plural("file", len(defFiles))),
		strings.Repeat("-", 40),
	)
	for _, file := range defFiles {
		content, ok := n.Files[file]
		if !ok {
			continue
		}
		if rendered := r.Definitions(file, content, defLines[file]); rendered != "" {
			parts = append(parts, file+":", rendered)
		}
	}

	if opts.IncludeReferences && len(n.References) > 0 {
		refFiles, refLines := groupLocations(n.References)
		parts = append(parts,
			fmt.Sprintf("References (%d total, %d %s)", len(n.References), len(refFiles), plural("file", len(refFiles))),
			strings.Repeat("-", 40),
		)
		for _, file := range refFiles {
			content, ok := n.Files[file]
			if !ok {
				continue
			}
			if rendered := r.References(file, content, refLines[file]); rendered != "" {
				parts = append(parts, "\n"+file+":", rendered)
			}
		}
	}

	return strings.Join(parts, "\n")
}

// MultiSymbolNavigation aggregates navigation results for several
// symbols. Requested preserves the caller's symbol order; Files carries
// the union of relevant file contents across all symbols.
type MultiSymbolNavigation struct {
	Requested  []string
	Symbols    map[string]SymbolNavigation
	SourceFile string
	Files      map[string]string
}

// FoundSymbols lists the requested symbols that were found, in request order.
func (m MultiSymbolNavigation) FoundSymbols() []string {
	var found []string
	for _, s := range m.Requested {
		if m.Symbols[s].Found() {
			found = append(found, s)
		}
	}
	return found
}

// NotFoundSymbols lists the requested symbols with no hits, in request order.
func (m MultiSymbolNavigation) NotFoundSymbols() []string {
	var missing []string
	for _, s := range m.Requested {
		if !m.Symbols[s].Found() {
			missing = append(missing, s)
		}
	}
	return missing
}

// Get returns the navigation for one symbol.
func (m MultiSymbolNavigation) Get(symbol string) (SymbolNavigation, bool) {
	nav, ok := m.Symbols[symbol]
	return nav, ok
}

// Render formats all symbols at once, grouping locations by file so each
// file is rendered a single time with the union of its lines of interest.
// This is purely an output-size optimization; it does not change which
// locations were found.
func (m MultiSymbolNavigation) Render(r ContextRenderer, opts RenderOptions) string {
	found := m.FoundSymbols()
	notFound := m.NotFoundSymbols()

	if len(found) == 0 {
		return fmt.Sprintf("No symbols found: %s", strings.Join(m.Requested, ", "))
	}

	var parts []string

	if !opts.OmitHeader {
		total := len(m.Requested)
		parts = append(parts, "Summary", strings.Repeat("=", 40), "")
		if m.SourceFile != "" {
			parts = append(parts, fmt.Sprintf("Source file : %s", m.SourceFile))
		}
		parts = append(parts, fmt.Sprintf("Symbols found (%d/%d):", len(found), total))
		for _, s := range found {
			parts = append(parts, fmt.Sprintf("  - %s (%s)", s, m.Symbols[s].Kind))
		}
		if len(notFound) > 0 {
			parts = append(parts, fmt.Sprintf("Symbols not found (%d/%d):", len(notFound), total))
			for _, s := range notFound {
				parts = append(parts, fmt.Sprintf("  - %s", s))
			}
		}
		parts = append(parts, "")
	}

	totalDefs := 0
	totalRefs := 0
	defsByFile := make(map[string][]int)
	refsByFile := make(map[string][]int)
	for _, s := range found {
		nav := m.Symbols[s]
		totalDefs += len(nav.Definitions)
		totalRefs += len(nav.References)
		for _, loc := range nav.Definitions {
			defsByFile[loc.File] = append(defsByFile[loc.File], loc.Line)
		}
		for _, loc := range nav.References {
			refsByFile[loc.File] = append(refsByFile[loc.File], loc.Line)
		}
	}

	if len(defsByFile) > 0 {
		parts = append(parts,
			fmt.Sprintf("Definitions (%d total, %d files)", totalDefs, len(defsByFile)),
			strings.Repeat("-", 40),
		)
		for _, file := range sortedKeys(defsByFile) {
			content, ok := m.Files[file]
			if !ok {
				continue
			}
			if rendered := r.Definitions(file, content, uniqueSorted(defsByFile[file])); rendered != "" {
				parts = append(parts, "\n"+file+":", rendered)
			}
		}
	}

	if opts.IncludeReferences && len(refsByFile) > 0 {
		parts = append(parts,
			"",
			fmt.Sprintf("References (%d total, %d files)", totalRefs, len(refsByFile)),
			strings.Repeat("-", 40),
		)
		for _, file := range sortedKeys(refsByFile) {
			content, ok := m.Files[file]
			if !ok {
				continue
			}
			if rendered := r.References(file, content, uniqueSorted(refsByFile[file])); rendered != "" {
				parts = append(parts, "\n"+file+":", rendered)
			}
		}
	}

	return strings.Join(parts, "\n")
}

// groupLocations buckets lines by file, keeping files in first-appearance
// order so rendering follows the relevance order of the locations.
func groupLocations(locs []SymbolLocation) ([]string, map[string][]int) {
	var order []string
	byFile := make(map[string][]int)
	for _, loc := range locs {
		if _, seen := byFile[loc.File]; !seen {
			order = append(order, loc.File)
		}
		byFile[loc.File] = append(byFile[loc.File], loc.Line)
	}
	return order, byFile
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func uniqueSorted(lines []int) []int {
	seen := make(map[int]struct{}, len(lines))
	out := make([]int, 0, len(lines))
	for _, ln := range lines {
		if _, ok := seen[ln]; ok {
			continue
		}
		seen[ln] = struct{}{}
		out = append(out, ln)
	}
	sort.Ints(out)
	return out
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
