// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package extract turns source files into symbol tags (definition and
// reference occurrences) using tree-sitter.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/repograph/pkg/types"
)

// minNameLength filters one- and two-character captures; they are
// almost always loop variables or receivers and only add noise edges.
const minNameLength = 3

// Extractor extracts tags from source files. Queries are compiled once
// per language and reused across files.
type Extractor struct {
	queries map[string]*sitter.Query
	log     zerolog.Logger
}

// New creates an Extractor. Languages whose query fails to compile are
// dropped from the supported set rather than failing the constructor.
func New(log zerolog.Logger) *Extractor {
	e := &Extractor{
		queries: make(map[string]*sitter.Query, len(supportedLangs)),
		log:     log,
	}
	for ext, spec := range supportedLangs {
		q, err := sitter.NewQuery([]byte(spec.query), spec.lang)
		if err != nil {
			e.log.Warn().Err(err).Str("ext", ext).Msg("tag query failed to compile")
			continue
		}
		e.queries[ext] = q
	}
	return e
}

// Supported reports whether the file's extension has a tag grammar.
func (e *Extractor) Supported(path string) bool {
	_, ok := e.queries[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Tags extracts all definition and reference tags from one file.
// Parse failures are recovered locally: the file contributes zero tags
// and stays a rankable, edgeless graph node.
func (e *Extractor) Tags(ctx context.Context, fileID, absPath, content string) []types.Tag {
	ext := strings.ToLower(filepath.Ext(fileID))
	q, ok := e.queries[ext]
	if !ok {
		return nil
	}
	spec := supportedLangs[ext]

	source := []byte(content)
	root, err := sitter.ParseCtx(ctx, source, spec.lang)
	if err != nil || root == nil {
		e.log.Debug().Err(err).Str("file", fileID).Msg("parse failed, skipping")
		return nil
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	seen := make(map[string]struct{})
	var tags []types.Tag

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, source)
		for _, c := range m.Captures {
			kind, subkind, ok := splitCaptureName(q.CaptureNameForId(c.Index))
			if !ok {
				continue
			}
			name := c.Node.Content(source)
			if len(name) < minNameLength {
				continue
			}
			line := int(c.Node.StartPoint().Row) + 1 // 0-based to 1-based

			key := fmt.Sprintf("%d:%s:%d", kind, name, line)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			tags = append(tags, types.Tag{
				File:    fileID,
				AbsPath: absPath,
				Line:    line,
				Name:    name,
				Kind:    kind,
				Subkind: subkind,
			})
		}
	}

	e.log.Trace().Str("file", fileID).Int("tags", len(tags)).Msg("extracted")
	return tags
}

// splitCaptureName maps "definition.class" to (Definition, "class").
// Captures outside the convention are ignored.
func splitCaptureName(capture string) (types.TagKind, string, bool) {
	prefix, subkind, found := strings.Cut(capture, ".")
	if !found {
		return 0, "", false
	}
	switch prefix {
	case "definition":
		return types.Definition, subkind, true
	case "reference":
		return types.Reference, subkind, true
	default:
		return 0, "", false
	}
}
