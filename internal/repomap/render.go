// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petar-djukic/repograph/pkg/types"
)

// NoDefinitionsFound is returned when no ranked tags exist or when not
// even a single tag's rendering fits the token budget. The budget is a
// hard ceiling, never a target.
const NoDefinitionsFound = "No definitions found."

// RenderBudgeted renders the largest prefix of the ranked tag list
// whose output fits within maxTokens.
//
// Rendering grows monotonically with the number of included tags: tags
// are grouped by file and a file's excerpt only grows as more lines of
// interest are added. That monotonicity makes a binary search over the
// prefix length correct, and rendering is the expensive step, so
// O(log n) render trials beat a linear scan. Only score-ordered
// prefixes are ever considered; that is the contract, not an
// approximation.
func RenderBudgeted(ranked []types.RankedTag, files map[string]string, render types.RenderFunc, countTokens types.TokenCountFunc, maxTokens int) string {
	if len(ranked) == 0 {
		return NoDefinitionsFound
	}

	best := ""
	lo, hi := 1, len(ranked)
	for lo <= hi {
		mid := (lo + hi) / 2
		tree := renderTree(ranked[:mid], files, render)
		if countTokens(tree) <= maxTokens {
			best = tree
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == "" {
		return NoDefinitionsFound
	}
	return best
}

// renderTree renders the given ranked tags grouped by file. Files
// appear in order of their maximum tag score, highest first, ties
// broken by file name ascending. Each file section carries a header
// with its top score; files whose excerpt came back empty are dropped.
func renderTree(ranked []types.RankedTag, files map[string]string, render types.RenderFunc) string {
	if len(ranked) == 0 {
		return ""
	}

	type fileGroup struct {
		file     string
		maxScore float64
		lines    []int
	}

	var order []string
	groups := make(map[string]*fileGroup)
	for _, rt := range ranked {
		grp, ok := groups[rt.Tag.File]
		if !ok {
			grp = &fileGroup{file: rt.Tag.File, maxScore: rt.Score}
			groups[rt.Tag.File] = grp
			order = append(order, rt.Tag.File)
		}
		if rt.Score > grp.maxScore {
			grp.maxScore = rt.Score
		}
		grp.lines = append(grp.lines, rt.Tag.Line)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		if a.maxScore != b.maxScore {
			return a.maxScore > b.maxScore
		}
		return a.file < b.file
	})

	var sections []string
	for _, file := range order {
		grp := groups[file]
		rendered := render(file, files[file], uniqueSortedLines(grp.lines))
		if rendered == "" {
			continue
		}
		header := fmt.Sprintf("%s:\n(Rank value: %.4f)\n", grp.file, grp.maxScore)
		sections = append(sections, header+"\n"+rendered)
	}

	return strings.Join(sections, "\n\n")
}

func uniqueSortedLines(lines []int) []int {
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
