// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

// The repository links two tree-sitter Go bindings: the official
// github.com/tree-sitter/go-tree-sitter (via grep-ast, used here) and
// github.com/smacker/go-tree-sitter (used by internal/extract). Both
// embed the tree-sitter C runtime, so binaries importing both fail to
// link with duplicate-symbol errors unless the linker is told to keep
// the first definition.

// #cgo LDFLAGS: -Wl,--allow-multiple-definition
import "C"
