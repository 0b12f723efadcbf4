// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package discover

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func goOnly(path string) bool {
	return strings.HasSuffix(path, ".go")
}

func newTestDiscoverer(root string, excludes []string) *Discoverer {
	return New(root, goOnly, excludes, zerolog.Nop())
}

func relIDs(d *Discoverer, paths []string) []string {
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		ids = append(ids, d.Rel(p))
	}
	return ids
}

func TestResolve_WalksDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "pkg/util/util.go", "package util")
	writeFile(t, root, "README.md", "# readme")

	d := newTestDiscoverer(root, nil)
	files := d.Resolve([]string{root}, nil)

	assert.Equal(t, []string{"main.go", "pkg/util/util.go"}, relIDs(d, files))
}

func TestResolve_DefaultExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.go", "package app")
	writeFile(t, root, "node_modules/dep/index.go", "package dep")
	writeFile(t, root, "vendor/lib/lib.go", "package lib")
	writeFile(t, root, ".git/hooks/hook.go", "package hook")

	d := newTestDiscoverer(root, nil)
	files := d.Resolve([]string{root}, nil)

	assert.Equal(t, []string{"app.go"}, relIDs(d, files))
}

func TestResolve_CallerExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.go", "package app")
	writeFile(t, root, "generated/gen.go", "package gen")

	d := newTestDiscoverer(root, nil)
	files := d.Resolve([]string{root}, []string{"generated/"})

	assert.Equal(t, []string{"app.go"}, relIDs(d, files))
}

func TestResolve_SingleFilesAndDedupe(t *testing.T) {
	root := t.TempDir()
	app := writeFile(t, root, "app.go", "package app")

	d := newTestDiscoverer(root, nil)
	files := d.Resolve([]string{app, "app.go", root}, nil)

	assert.Equal(t, []string{"app.go"}, relIDs(d, files))
}

func TestResolve_MissingPathSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.go", "package app")

	d := newTestDiscoverer(root, nil)
	files := d.Resolve([]string{"no/such/path", root}, nil)

	assert.Equal(t, []string{"app.go"}, relIDs(d, files))
}

func TestResolve_GitIndexPreferred(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tracked.go", "package a")
	writeFile(t, root, "untracked.go", "package b")

	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("tracked.go")
	require.NoError(t, err)

	d := newTestDiscoverer(root, nil)
	files := d.Resolve([]string{root}, nil)

	assert.Equal(t, []string{"tracked.go"}, relIDs(d, files))
}

func TestRel_OutsideRootFallsBackToBase(t *testing.T) {
	d := newTestDiscoverer(t.TempDir(), nil)
	assert.Equal(t, "elsewhere.go", d.Rel("/somewhere/else/elsewhere.go"))
}

func TestReadFiles_Contents(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.go", "package a")
	b := writeFile(t, root, "sub/b.go", "package b")

	d := newTestDiscoverer(root, nil)
	files := d.ReadFiles(context.Background(), []string{a, b}, 2)

	assert.Equal(t, map[string]string{
		"a.go":     "package a",
		"sub/b.go": "package b",
	}, files)
}

func TestReadFiles_InvalidUTF8Decoded(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "latin1.go")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0o644))

	d := newTestDiscoverer(root, nil)
	files := d.ReadFiles(context.Background(), []string{path}, 1)

	assert.Equal(t, "café", files["latin1.go"])
}

func TestReadFiles_MissingFileSkipped(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.go", "package a")

	d := newTestDiscoverer(root, nil)
	files := d.ReadFiles(context.Background(), []string{a, filepath.Join(root, "gone.go")}, 4)

	assert.Len(t, files, 1)
	assert.Contains(t, files, "a.go")
}
