// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package discover resolves input paths to the set of source files a
// mapping pass should consider, and reads their content.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// defaultExcludes lists the directories and artifacts that never belong
// in a repository map: VCS metadata, dependency trees, virtualenvs,
// build outputs, caches.
var defaultExcludes = []string{
	".git/", ".svn/", ".hg/",
	"node_modules/", "vendor/", "bower_components/", ".bundle/",
	"__pycache__/", ".pytest_cache/", ".mypy_cache/", ".tox/", ".nox/",
	".eggs/", "*.egg-info/", ".venv*/", "venv*/", "env/", ".env/",
	"build/", "dist/", "target/", "out/", "_build/",
	".idea/", ".vscode/", ".eclipse/", ".settings/",
	".cache/", ".tmp/", "tmp/", ".temp/",
	"coverage/", ".coverage", "htmlcov/", ".nyc_output/",
	".gradle/", ".cargo/",
}

// Discoverer resolves files and directories under a fixed root.
type Discoverer struct {
	root      string
	supported func(path string) bool
	base      []string // default + configured exclude patterns
	log       zerolog.Logger
}

// New creates a Discoverer rooted at root. The supported predicate
// decides which file extensions are worth reading; extraExcludes are
// gitignore-style patterns merged with the built-in defaults.
func New(root string, supported func(string) bool, extraExcludes []string, log zerolog.Logger) *Discoverer {
	base := make([]string, 0, len(defaultExcludes)+len(extraExcludes))
	base = append(base, defaultExcludes...)
	base = append(base, extraExcludes...)
	return &Discoverer{
		root:      root,
		supported: supported,
		base:      base,
		log:       log,
	}
}

// Root returns the discovery root.
func (d *Discoverer) Root() string {
	return d.root
}

// Rel returns path relative to the root, falling back to the base name
// for paths outside it. Relative inputs are anchored at the root.
// Always slash-separated, so file identifiers are stable across
// platforms.
func (d *Discoverer) Rel(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.root, path)
	}
	rel, err := filepath.Rel(d.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// Resolve expands the given files and/or directories into the concrete
// list of supported, non-excluded files, sorted for determinism.
// Directories that are git work trees are enumerated from the git
// index; everything else falls back to a recursive walk. Unreadable
// entries are skipped, never fatal.
func (d *Discoverer) Resolve(paths []string, excludes []string) []string {
	matcher := ignore.CompileIgnoreLines(append(append([]string{}, d.base...), excludes...)...)

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		rel := d.Rel(path)
		if matcher.MatchesPath(rel) || !d.supported(path) {
			return
		}
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(d.root, p)
		}

		info, err := os.Stat(abs)
		if err != nil {
			d.log.Debug().Err(err).Str("path", p).Msg("skipping unreadable path")
			continue
		}

		if !info.IsDir() {
			add(abs)
			continue
		}

		if tracked, ok := d.gitTracked(abs); ok {
			d.log.Debug().Str("dir", abs).Int("tracked", len(tracked)).Msg("using git index")
			for _, f := range tracked {
				add(f)
			}
			continue
		}

		d.walk(abs, matcher, add)
	}

	sort.Strings(files)
	d.log.Debug().Int("files", len(files)).Msg("discovery complete")
	return files
}

// gitTracked lists the files recorded in the git index of a work tree,
// as absolute paths. Returns ok=false when dir is not a repository or
// the index cannot be read, in which case the caller walks instead.
func (d *Discoverer) gitTracked(dir string) ([]string, bool) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, false
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, false
	}
	files := make([]string, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		files = append(files, filepath.Join(dir, filepath.FromSlash(entry.Name)))
	}
	return files, true
}

func (d *Discoverer) walk(dir string, matcher *ignore.GitIgnore, add func(string)) {
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if entry.IsDir() {
			if path != dir && matcher.MatchesPath(d.Rel(path)+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		add(path)
		return nil
	})
}
