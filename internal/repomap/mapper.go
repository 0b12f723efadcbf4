// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/petar-djukic/repograph/internal/discover"
	"github.com/petar-djukic/repograph/internal/extract"
	"github.com/petar-djukic/repograph/internal/render"
	"github.com/petar-djukic/repograph/pkg/types"
)

// NoSupportedFiles is returned when discovery yields nothing to map.
const NoSupportedFiles = "No supported files found."

// Mapper ties discovery, tag extraction, ranking and rendering into
// the operations exposed by the public API.
type Mapper struct {
	disc        *discover.Discoverer
	ext         *extract.Extractor
	rend        *render.TreeRenderer
	countTokens types.TokenCountFunc
	concurrency int
	log         zerolog.Logger
}

// NewMapper assembles a Mapper from its parts.
func NewMapper(disc *discover.Discoverer, ext *extract.Extractor, rend *render.TreeRenderer, countTokens types.TokenCountFunc, concurrency int, log zerolog.Logger) *Mapper {
	return &Mapper{
		disc:        disc,
		ext:         ext,
		rend:        rend,
		countTokens: countTokens,
		concurrency: concurrency,
		log:         log,
	}
}

// MapRequest describes one repository map query.
type MapRequest struct {
	Paths           []string // files or directories; empty means the root
	FocusFiles      []string
	MentionedIdents []string
	MaxTokens       int
	Excludes        []string
}

// MapResult carries the rendered map and the extraction statistics for
// the full corpus that backed it.
type MapResult struct {
	Map    string
	Report types.FileReport
}

// RepoMap builds a token-bounded, importance-ranked map of the
// requested paths.
func (m *Mapper) RepoMap(ctx context.Context, req MapRequest) (MapResult, error) {
	files, tags, err := m.corpus(ctx, req.Paths, req.Excludes)
	if err != nil {
		return MapResult{}, err
	}
	if len(files) == 0 {
		return MapResult{Map: NoSupportedFiles}, nil
	}

	opts := RankOptions{
		FocusFiles:      m.fileSet(req.FocusFiles),
		MentionedIdents: stringSet(req.MentionedIdents),
	}

	ranked, report := RankTags(sortedFileIDs(files), tags, opts)
	m.log.Debug().
		Int("files", len(files)).
		Int("ranked_tags", len(ranked)).
		Int("max_tokens", req.MaxTokens).
		Msg("rendering map")

	out := RenderBudgeted(ranked, files, m.rend.Map, m.countTokens, req.MaxTokens)
	return MapResult{Map: out, Report: report}, nil
}

// FindRequest describes a symbol lookup across the corpus.
type FindRequest struct {
	Symbols         []string
	Paths           []string
	SourceFile      string
	IncludeSnippets bool
	Excludes        []string
}

// Find locates the definitions and references of each requested symbol.
func (m *Mapper) Find(ctx context.Context, req FindRequest) (types.MultiSymbolNavigation, error) {
	files, tags, err := m.corpus(ctx, req.Paths, req.Excludes)
	if err != nil {
		return types.MultiSymbolNavigation{}, err
	}

	sourceFile := ""
	if req.SourceFile != "" {
		sourceFile = m.disc.Rel(req.SourceFile)
	}

	return Navigate(files, tags, req.Symbols, sourceFile, req.IncludeSnippets), nil
}

// corpus discovers, reads and tags the requested paths. Extraction
// walks files in sorted order so tag order, and with it every
// downstream tiebreak, is reproducible.
func (m *Mapper) corpus(ctx context.Context, paths, excludes []string) (map[string]string, []types.Tag, error) {
	if len(paths) == 0 {
		paths = []string{m.disc.Root()}
	}

	resolved := m.disc.Resolve(paths, excludes)
	files := m.disc.ReadFiles(ctx, resolved, m.concurrency)

	absByID := make(map[string]string, len(resolved))
	for _, abs := range resolved {
		absByID[m.disc.Rel(abs)] = abs
	}

	var tags []types.Tag
	for _, id := range sortedFileIDs(files) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		tags = append(tags, m.ext.Tags(ctx, id, absByID[id], files[id])...)
	}
	return files, tags, nil
}

// fileSet normalizes paths to root-relative identifiers.
func (m *Mapper) fileSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[m.disc.Rel(p)] = struct{}{}
	}
	return set
}

func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func sortedFileIDs(files map[string]string) []string {
	ids := make([]string, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
