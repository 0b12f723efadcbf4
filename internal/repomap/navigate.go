// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"strings"

	"github.com/petar-djukic/repograph/pkg/types"
)

// unknownKind is reported for symbols with no definition in the corpus.
const unknownKind = "unknown"

// Navigate resolves the definitions and references of each target
// symbol, ordered by relevance. The source file (the file the query
// originated from, if any) seeds the personalized ranking and the
// target names are boosted as mentioned identifiers, so locations
// connected to the query context surface first.
//
// A symbol with no hits gets an empty navigation; that is a valid
// outcome, not an error.
func Navigate(files map[string]string, tags []types.Tag, targets []string, sourceFile string, includeSnippets bool) types.MultiSymbolNavigation {
	fileIDs := make([]string, 0, len(files))
	for f := range files {
		fileIDs = append(fileIDs, f)
	}

	opts := RankOptions{
		MentionedIdents: make(map[string]struct{}, len(targets)),
		Kinds: map[types.TagKind]struct{}{
			types.Definition: {},
			types.Reference:  {},
		},
	}
	for _, name := range targets {
		opts.MentionedIdents[name] = struct{}{}
	}
	if sourceFile != "" {
		opts.FocusFiles = map[string]struct{}{sourceFile: {}}
	}

	ranked, _ := RankTags(fileIDs, tags, opts)

	// Filter to the targets, keeping ranked order within each bucket.
	targetSet := make(map[string]struct{}, len(targets))
	for _, name := range targets {
		targetSet[name] = struct{}{}
	}

	defsBySymbol := make(map[string][]types.Tag)
	refsBySymbol := make(map[string][]types.Tag)
	relevant := make(map[string]string)

	for _, rt := range ranked {
		if _, ok := targetSet[rt.Tag.Name]; !ok {
			continue
		}
		switch rt.Tag.Kind {
		case types.Definition:
			defsBySymbol[rt.Tag.Name] = append(defsBySymbol[rt.Tag.Name], rt.Tag)
		case types.Reference:
			refsBySymbol[rt.Tag.Name] = append(refsBySymbol[rt.Tag.Name], rt.Tag)
		}
		if content, ok := files[rt.Tag.File]; ok {
			relevant[rt.Tag.File] = content
		}
	}

	navs := make(map[string]types.SymbolNavigation, len(targets))
	for _, symbol := range targets {
		defs := defsBySymbol[symbol]
		refs := refsBySymbol[symbol]

		kind := unknownKind
		if len(defs) > 0 {
			kind = defs[0].Subkind
		}

		navs[symbol] = types.SymbolNavigation{
			Symbol:      symbol,
			Kind:        kind,
			Definitions: makeLocations(defs, files, includeSnippets),
			References:  makeLocations(refs, files, includeSnippets),
			SourceFile:  sourceFile,
			Files:       relevant,
		}
	}

	return types.MultiSymbolNavigation{
		Requested:  append([]string(nil), targets...),
		Symbols:    navs,
		SourceFile: sourceFile,
		Files:      relevant,
	}
}

// makeLocations converts tags to locations, attaching the literal
// source line as a snippet when requested. Out-of-range lines yield an
// empty snippet, never an error.
func makeLocations(tags []types.Tag, files map[string]string, includeSnippets bool) []types.SymbolLocation {
	locs := make([]types.SymbolLocation, 0, len(tags))
	for _, t := range tags {
		loc := types.SymbolLocation{File: t.File, Line: t.Line}
		if includeSnippets {
			loc.Snippet = sourceLine(files[t.File], t.Line)
		}
		locs = append(locs, loc)
	}
	return locs
}

func sourceLine(content string, line int) string {
	if content == "" || line < 1 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}
