// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repograph/pkg/types"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(zerolog.Nop())
}

func findTag(tags []types.Tag, name string, kind types.TagKind) *types.Tag {
	for i := range tags {
		if tags[i].Name == name && tags[i].Kind == kind {
			return &tags[i]
		}
	}
	return nil
}

func TestExtractor_GoDefinitionsAndReferences(t *testing.T) {
	src := `package main

func Greet(name string) string {
	return "hello " + name
}

func main() {
	Greet("world")
}
`
	e := newTestExtractor(t)
	tags := e.Tags(context.Background(), "main.go", "/repo/main.go", src)

	def := findTag(tags, "Greet", types.Definition)
	require.NotNil(t, def, "expected definition tag for Greet")
	assert.Equal(t, 3, def.Line)
	assert.Equal(t, "function", def.Subkind)
	assert.Equal(t, "main.go", def.File)
	assert.Equal(t, "/repo/main.go", def.AbsPath)

	ref := findTag(tags, "Greet", types.Reference)
	require.NotNil(t, ref, "expected reference tag for Greet")
	assert.Equal(t, 8, ref.Line)
	assert.Equal(t, "call", ref.Subkind)
}

func TestExtractor_GoTypesAndMethods(t *testing.T) {
	src := `package store

type Cache struct{}

func (c *Cache) Lookup(key string) string {
	return key
}
`
	e := newTestExtractor(t)
	tags := e.Tags(context.Background(), "store.go", "/repo/store.go", src)

	typeDef := findTag(tags, "Cache", types.Definition)
	require.NotNil(t, typeDef)
	assert.Equal(t, "type", typeDef.Subkind)

	methodDef := findTag(tags, "Lookup", types.Definition)
	require.NotNil(t, methodDef)
	assert.Equal(t, "method", methodDef.Subkind)
}

func TestExtractor_PythonClassesAndCalls(t *testing.T) {
	src := `class Database:
    def connect(self):
        pass

def setup():
    db = Database()
    db.connect()
`
	e := newTestExtractor(t)
	tags := e.Tags(context.Background(), "db.py", "/repo/db.py", src)

	classDef := findTag(tags, "Database", types.Definition)
	require.NotNil(t, classDef)
	assert.Equal(t, "class", classDef.Subkind)
	assert.Equal(t, 1, classDef.Line)

	methodDef := findTag(tags, "connect", types.Definition)
	require.NotNil(t, methodDef)

	call := findTag(tags, "connect", types.Reference)
	require.NotNil(t, call)
	assert.Equal(t, 7, call.Line)
}

func TestExtractor_ShortNamesFiltered(t *testing.T) {
	src := `package main

func Do() {
	f()
}

func f() {}
`
	e := newTestExtractor(t)
	tags := e.Tags(context.Background(), "main.go", "", src)

	assert.Nil(t, findTag(tags, "f", types.Definition))
	assert.Nil(t, findTag(tags, "f", types.Reference))
	assert.Nil(t, findTag(tags, "Do", types.Definition), "two-character names are filtered")
}

func TestExtractor_UnsupportedExtension(t *testing.T) {
	e := newTestExtractor(t)
	tags := e.Tags(context.Background(), "notes.txt", "", "just text")
	assert.Nil(t, tags)
}

func TestExtractor_Supported(t *testing.T) {
	e := newTestExtractor(t)

	assert.True(t, e.Supported("main.go"))
	assert.True(t, e.Supported("app.py"))
	assert.True(t, e.Supported("component.TSX"))
	assert.True(t, e.Supported("legacy.jsx"))
	assert.False(t, e.Supported("README.md"))
	assert.False(t, e.Supported("Makefile"))
}

func TestExtractor_DuplicateCapturesCollapse(t *testing.T) {
	// Both call patterns can match an identifier in edge cases; the
	// extractor keeps one tag per (kind, name, line).
	src := `package main

func Run() {
	Helper()
	Helper()
}

func Helper() {}
`
	e := newTestExtractor(t)
	tags := e.Tags(context.Background(), "main.go", "", src)

	count := 0
	for _, tag := range tags {
		if tag.Name == "Helper" && tag.Kind == types.Reference && tag.Line == 4 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
