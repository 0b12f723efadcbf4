// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repomap builds a ranked, token-bounded map of a repository:
// it turns extracted symbol tags into a file reference graph, ranks
// files with a personalized PageRank, and renders the highest-ranked
// definitions within a token budget.
package repomap

import (
	"sort"

	"github.com/petar-djukic/repograph/pkg/types"
)

// Edge is a directed edge in the reference graph: the referencing file
// points at the defining file, labeled with the symbol name.
type Edge struct {
	From string
	To   string
	Name string
}

// Graph is a directed multigraph whose nodes are files and whose edges
// record "From references a name that To defines". Every input file is
// a node, even when it produced no tags. The graph is rebuilt from
// scratch for each ranking pass; it has no identity beyond one call.
type Graph struct {
	Nodes       []string
	Edges       []Edge
	Definers    map[string]map[string]struct{} // name -> files defining it
	Referencers map[string]map[string]struct{} // name -> files referencing it
}

// BuildGraph constructs the reference graph for the given file set and
// its extracted tags. A name defined in several files gets edges to all
// of them; resolving that ambiguity is left to the ranking, which
// distributes authority across the definers. References with no
// matching definer simply produce no edge.
func BuildGraph(fileIDs []string, tags []types.Tag) *Graph {
	g := &Graph{
		Definers:    make(map[string]map[string]struct{}),
		Referencers: make(map[string]map[string]struct{}),
	}

	g.Nodes = append(g.Nodes, fileIDs...)
	sort.Strings(g.Nodes)

	for _, t := range tags {
		switch t.Kind {
		case types.Definition:
			addToSet(g.Definers, t.Name, t.File)
		case types.Reference:
			addToSet(g.Referencers, t.Name, t.File)
		}
	}

	// One edge per (referencing file, defining file, name) triple,
	// self-edges excluded. Sorted iteration keeps the edge list
	// deterministic for identical inputs.
	for _, name := range sortedSetKeys(g.Referencers) {
		defFiles, ok := g.Definers[name]
		if !ok {
			continue
		}
		for _, from := range sortedSet(g.Referencers[name]) {
			for _, to := range sortedSet(defFiles) {
				if from == to {
					continue
				}
				g.Edges = append(g.Edges, Edge{From: from, To: to, Name: name})
			}
		}
	}

	return g
}

func addToSet(m map[string]map[string]struct{}, key, member string) {
	if m[key] == nil {
		m[key] = make(map[string]struct{})
	}
	m[key][member] = struct{}{}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedSetKeys(m map[string]map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
