// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repograph/pkg/types"
)

func navFixture() (map[string]string, []types.Tag) {
	files := map[string]string{
		"db.go":   "package db\n\nfunc Connect() {}\n",
		"main.go": "package main\n\nfunc main() {\n\tConnect()\n}\n",
		"util.go": "package util\n\nfunc helper() {}\n",
	}
	tags := []types.Tag{
		{Name: "Connect", File: "db.go", Line: 3, Kind: types.Definition, Subkind: "function"},
		{Name: "main", File: "main.go", Line: 3, Kind: types.Definition, Subkind: "function"},
		{Name: "Connect", File: "main.go", Line: 4, Kind: types.Reference, Subkind: "call"},
		{Name: "helper", File: "util.go", Line: 3, Kind: types.Definition, Subkind: "function"},
	}
	return files, tags
}

func TestNavigate_PartitionsDefinitionsAndReferences(t *testing.T) {
	files, tags := navFixture()

	result := Navigate(files, tags, []string{"Connect"}, "", false)

	nav, ok := result.Get("Connect")
	require.True(t, ok)
	assert.True(t, nav.Found())
	assert.Equal(t, "function", nav.Kind)

	require.Len(t, nav.Definitions, 1)
	assert.Equal(t, types.SymbolLocation{File: "db.go", Line: 3}, nav.Definitions[0])

	require.Len(t, nav.References, 1)
	assert.Equal(t, types.SymbolLocation{File: "main.go", Line: 4}, nav.References[0])
}

func TestNavigate_MultipleDefiners(t *testing.T) {
	files := map[string]string{
		"a.go": "func Parse() {}\n",
		"b.go": "func Parse() {}\n",
	}
	tags := []types.Tag{
		{Name: "Parse", File: "a.go", Line: 1, Kind: types.Definition, Subkind: "function"},
		{Name: "Parse", File: "b.go", Line: 1, Kind: types.Definition, Subkind: "function"},
	}

	result := Navigate(files, tags, []string{"Parse"}, "", false)

	nav, _ := result.Get("Parse")
	assert.Len(t, nav.Definitions, 2)
}

func TestNavigate_NotFoundIsData(t *testing.T) {
	files, tags := navFixture()

	result := Navigate(files, tags, []string{"Nonexistent"}, "", false)

	nav, ok := result.Get("Nonexistent")
	require.True(t, ok)
	assert.False(t, nav.Found())
	assert.Equal(t, "unknown", nav.Kind)
	assert.Empty(t, nav.Definitions)
	assert.Empty(t, nav.References)
	assert.Equal(t, []string{"Nonexistent"}, result.NotFoundSymbols())
}

func TestNavigate_MixedFoundAndMissing(t *testing.T) {
	files, tags := navFixture()

	result := Navigate(files, tags, []string{"Connect", "Ghost", "helper"}, "", false)

	assert.Equal(t, []string{"Connect", "helper"}, result.FoundSymbols())
	assert.Equal(t, []string{"Ghost"}, result.NotFoundSymbols())
	assert.Equal(t, []string{"Connect", "Ghost", "helper"}, result.Requested)
}

func TestNavigate_Snippets(t *testing.T) {
	files, tags := navFixture()

	result := Navigate(files, tags, []string{"Connect"}, "", true)

	nav, _ := result.Get("Connect")
	require.Len(t, nav.Definitions, 1)
	assert.Equal(t, "func Connect() {}", nav.Definitions[0].Snippet)
	require.Len(t, nav.References, 1)
	assert.Equal(t, "Connect()", nav.References[0].Snippet)
}

func TestNavigate_SnippetOutOfRange(t *testing.T) {
	files := map[string]string{"a.go": "one line\n"}
	tags := []types.Tag{
		{Name: "Thing", File: "a.go", Line: 99, Kind: types.Definition, Subkind: "function"},
	}

	result := Navigate(files, tags, []string{"Thing"}, "", true)

	nav, _ := result.Get("Thing")
	require.Len(t, nav.Definitions, 1)
	assert.Equal(t, "", nav.Definitions[0].Snippet)
}

func TestNavigate_SourceFileCarriedThrough(t *testing.T) {
	files, tags := navFixture()

	result := Navigate(files, tags, []string{"Connect"}, "main.go", false)

	assert.Equal(t, "main.go", result.SourceFile)
	nav, _ := result.Get("Connect")
	assert.Equal(t, "main.go", nav.SourceFile)
}

func TestNavigate_RelevantFilesOnly(t *testing.T) {
	files, tags := navFixture()

	result := Navigate(files, tags, []string{"Connect"}, "", false)

	// util.go contributed no Connect locations, so its content is not
	// carried in the result.
	assert.Contains(t, result.Files, "db.go")
	assert.Contains(t, result.Files, "main.go")
	assert.NotContains(t, result.Files, "util.go")
}
