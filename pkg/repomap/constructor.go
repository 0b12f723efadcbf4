// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/petar-djukic/repograph/internal/discover"
	"github.com/petar-djukic/repograph/internal/extract"
	"github.com/petar-djukic/repograph/internal/render"
	internalrepomap "github.com/petar-djukic/repograph/internal/repomap"
	"github.com/petar-djukic/repograph/internal/tokens"
	"github.com/petar-djukic/repograph/pkg/types"
)

const defaultMaxTokens = 8192

// New validates the config and returns a ready-to-use Mapper. It does
// not read any files; that happens per request.
func New(cfg Config) (Mapper, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if cfg.Verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	ext := extract.New(log)
	disc := discover.New(cfg.Root, ext.Supported, cfg.Excludes, log)
	rend := render.NewTreeRenderer(log)
	mapper := internalrepomap.NewMapper(disc, ext, rend, tokens.Estimate, cfg.Concurrency, log)

	return &mapperAdapter{mapper: mapper, maxTokens: cfg.MaxTokens, rend: rend}, nil
}

// mapperAdapter adapts internal/repomap.Mapper to the public interface.
type mapperAdapter struct {
	mapper    *internalrepomap.Mapper
	rend      *render.TreeRenderer
	maxTokens int
}

func (a *mapperAdapter) RepoMap(ctx context.Context, req MapRequest) (*MapResult, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = a.maxTokens
	}
	if maxTokens < 0 {
		return nil, fmt.Errorf("%w: MaxTokens must not be negative", ErrInvalidConfig)
	}

	ir, err := a.mapper.RepoMap(ctx, internalrepomap.MapRequest{
		Paths:           req.Paths,
		FocusFiles:      req.FocusFiles,
		MentionedIdents: req.MentionedIdents,
		MaxTokens:       maxTokens,
		Excludes:        req.Excludes,
	})
	if err != nil {
		return nil, err
	}
	return &MapResult{Map: ir.Map, Report: ir.Report}, nil
}

func (a *mapperAdapter) Find(ctx context.Context, req FindRequest) (*types.MultiSymbolNavigation, error) {
	if len(req.Symbols) == 0 {
		return nil, fmt.Errorf("%w: at least one symbol is required", ErrInvalidConfig)
	}

	nav, err := a.mapper.Find(ctx, internalrepomap.FindRequest{
		Symbols:         req.Symbols,
		Paths:           req.Paths,
		SourceFile:      req.SourceFile,
		IncludeSnippets: req.IncludeSnippets,
		Excludes:        req.Excludes,
	})
	if err != nil {
		return nil, err
	}
	return &nav, nil
}

func (a *mapperAdapter) FindSymbol(ctx context.Context, symbol string, req FindRequest) (*types.SymbolNavigation, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidConfig)
	}
	req.Symbols = []string{symbol}

	multi, err := a.Find(ctx, req)
	if err != nil {
		return nil, err
	}
	nav, _ := multi.Get(symbol)
	return &nav, nil
}

// Renderer exposes the snippet renderer used for navigation output, so
// callers can turn a MultiSymbolNavigation into text.
func (a *mapperAdapter) Renderer() types.ContextRenderer {
	return a.rend
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.Root == "" {
		return fmt.Errorf("Root is required")
	}
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		return fmt.Errorf("Root %q does not exist or is not a directory", cfg.Root)
	}
	if cfg.MaxTokens < 0 {
		return fmt.Errorf("MaxTokens must not be negative")
	}
	if cfg.Concurrency < 0 {
		return fmt.Errorf("Concurrency must not be negative")
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
}
