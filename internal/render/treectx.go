// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render produces code snippets around lines of interest using
// grep-ast tree contexts.
package render

import (
	grepast "github.com/cyber-nic/grep-ast"
	"github.com/rs/zerolog"
)

// TreeRenderer renders excerpts of source files with structural
// context. The zero amount of padding is the tightest view, used for
// the repository map itself; symbol views use wider padding.
type TreeRenderer struct {
	log zerolog.Logger
}

// NewTreeRenderer creates a TreeRenderer.
func NewTreeRenderer(log zerolog.Logger) *TreeRenderer {
	return &TreeRenderer{log: log}
}

// Map renders the compact form used inside a repository map: the lines
// of interest plus the scopes enclosing them, nothing more.
func (r *TreeRenderer) Map(file, content string, lines []int) string {
	return r.render(file, content, lines, 0, false)
}

// Definitions renders a definition snippet with generous padding and
// the enclosing parent scopes, enough to read a signature in place.
func (r *TreeRenderer) Definitions(file, content string, lines []int) string {
	return r.render(file, content, lines, 8, true)
}

// References renders a reference snippet with moderate padding.
func (r *TreeRenderer) References(file, content string, lines []int) string {
	return r.render(file, content, lines, 4, false)
}

// render builds a grep-ast tree context for content and formats the
// given 1-based lines of interest. Files grep-ast cannot parse render
// as the empty string so callers can drop them silently.
func (r *TreeRenderer) render(file, content string, lines []int, padding int, parentScope bool) string {
	tc, err := grepast.NewTreeContext(
		file, []byte(content),
		grepast.WithColor(false),
		grepast.WithChildContext(false),
		grepast.WithLastLineContext(false),
		grepast.WithTopMargin(0),
		grepast.WithLinesOfInterestMarked(false),
		grepast.WithLinesOfInterestPadding(padding),
		grepast.WithTopOfFileParentScope(parentScope),
	)
	if err != nil {
		if err == grepast.ErrorUnsupportedLanguage || err == grepast.ErrorUnrecognizedFiletype {
			return ""
		}
		r.log.Debug().Err(err).Str("file", file).Msg("tree context failed")
		return ""
	}

	// grep-ast lines of interest are 0-based.
	loi := make(map[int]struct{}, len(lines))
	for _, ln := range lines {
		if ln > 0 {
			loi[ln-1] = struct{}{}
		}
	}
	tc.AddLinesOfInterest(loi)
	tc.AddContext()
	return tc.Format()
}
