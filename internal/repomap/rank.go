// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"errors"
	"math"
	"sort"

	"github.com/petar-djukic/repograph/pkg/types"
)

const (
	damping           = 0.85
	maxIterations     = 100
	tolerance         = 1e-6
	personalizeWeight = 100.0
	mentionedBoost    = 10.0
	focusBoost        = 20.0
)

// ErrRankDiverged reports that the power iteration produced a
// non-finite value and its result cannot be trusted.
var ErrRankDiverged = errors.New("pagerank diverged")

// RankOptions selects the context boosts and the tag kinds that enter
// the ranked list. Nil sets mean "none"; a nil Kinds set means
// definitions only.
type RankOptions struct {
	FocusFiles      map[string]struct{}
	MentionedIdents map[string]struct{}
	Kinds           map[types.TagKind]struct{}
}

// RankTags ranks every tag of the selected kinds by the importance of
// its file, boosted by query context, and returns the ordered list
// together with full-corpus counts. Ranking never fails: numerical
// trouble degrades to the fixed fallback ranks.
//
// Ordering is the contract downstream code depends on: score
// descending, then file ascending, then line ascending, deterministic
// for identical inputs.
func RankTags(fileIDs []string, tags []types.Tag, opts RankOptions) ([]types.RankedTag, types.FileReport) {
	kinds := opts.Kinds
	if kinds == nil {
		kinds = map[types.TagKind]struct{}{types.Definition: {}}
	}

	g := BuildGraph(fileIDs, tags)
	ranks := fileRanks(g, opts.FocusFiles)

	var ranked []types.RankedTag
	report := types.FileReport{TotalFilesConsidered: len(fileIDs)}

	for _, t := range tags {
		switch t.Kind {
		case types.Definition:
			report.DefinitionMatches++
		case types.Reference:
			report.ReferenceMatches++
		}

		if _, ok := kinds[t.Kind]; !ok {
			continue
		}

		boost := 1.0
		if _, ok := opts.MentionedIdents[t.Name]; ok {
			boost *= mentionedBoost
		}
		if _, ok := opts.FocusFiles[t.File]; ok {
			boost *= focusBoost
		}

		ranked = append(ranked, types.RankedTag{
			Score: ranks[t.File] * boost,
			Tag:   t,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Tag.File != ranked[j].Tag.File {
			return ranked[i].Tag.File < ranked[j].Tag.File
		}
		return ranked[i].Tag.Line < ranked[j].Tag.Line
	})

	return ranked, report
}

// fileRanks computes a rank per file. Focus files present in the graph
// seed a personalized PageRank; without any usable focus file every
// node gets a flat 1.0 (callers must not assume ranks sum to one in
// that branch). A diverged solve falls back to flat ranks with focus
// files pinned to their personalization weight, so ranking degrades to
// "focus files first" instead of crashing.
func fileRanks(g *Graph, focusFiles map[string]struct{}) map[string]float64 {
	if len(g.Nodes) == 0 {
		return map[string]float64{}
	}

	personalization := make(map[string]float64)
	for _, node := range g.Nodes {
		if _, ok := focusFiles[node]; ok {
			personalization[node] = personalizeWeight
		}
	}

	if len(personalization) == 0 {
		return uniformRanks(g.Nodes)
	}

	ranks, err := pageRank(g, personalization)
	if err != nil {
		ranks = uniformRanks(g.Nodes)
		for node, weight := range personalization {
			ranks[node] = weight
		}
	}
	return ranks
}

func uniformRanks(nodes []string) map[string]float64 {
	ranks := make(map[string]float64, len(nodes))
	for _, node := range nodes {
		ranks[node] = 1.0
	}
	return ranks
}

// pageRank runs a personalized power iteration until convergence. The
// restart distribution is the normalized personalization vector; nodes
// absent from it never receive teleport mass. Dangling nodes hand their
// rank back through the restart distribution.
func pageRank(g *Graph, personalization map[string]float64) (map[string]float64, error) {
	n := len(g.Nodes)

	idx := make(map[string]int, n)
	for i, node := range g.Nodes {
		idx[node] = i
	}

	restart := make([]float64, n)
	var total float64
	for node, weight := range personalization {
		if i, ok := idx[node]; ok {
			restart[i] = weight
			total += weight
		}
	}
	if total == 0 {
		return nil, ErrRankDiverged
	}
	for i := range restart {
		restart[i] /= total
	}

	outEdges := make([][]int, n)
	outDegree := make([]int, n)
	for _, e := range g.Edges {
		from, okF := idx[e.From]
		to, okT := idx[e.To]
		if !okF || !okT {
			continue
		}
		outEdges[from] = append(outEdges[from], to)
		outDegree[from]++
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIterations; iter++ {
		for i := range next {
			next[i] = (1.0 - damping) * restart[i]
		}
		for i := 0; i < n; i++ {
			if outDegree[i] == 0 {
				for j := range next {
					next[j] += damping * rank[i] * restart[j]
				}
				continue
			}
			share := damping * rank[i] / float64(outDegree[i])
			for _, to := range outEdges[i] {
				next[to] += share
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(next[i] - rank[i])
		}
		copy(rank, next)
		if diff < tolerance {
			break
		}
	}

	ranks := make(map[string]float64, n)
	for i, node := range g.Nodes {
		if math.IsNaN(rank[i]) || math.IsInf(rank[i], 0) {
			return nil, ErrRankDiverged
		}
		ranks[node] = rank[i]
	}
	return ranks, nil
}
