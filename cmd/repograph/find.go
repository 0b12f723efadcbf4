// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/repograph/pkg/repomap"
	"github.com/petar-djukic/repograph/pkg/types"
)

// newFindCmd creates the "find" command.
func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find SYMBOL [SYMBOL...]",
		Short: "Locate symbol definitions and references",
		Long:  "Find parses the corpus, locates every definition and reference of the given symbols, and prints them with surrounding code context. Symbols that do not exist are reported, not errored.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFind,
	}

	cmd.Flags().String("source-file", "", "File the query originates from; its neighborhood ranks first")
	cmd.Flags().StringSlice("paths", nil, "Files or directories to search (default: the root)")
	cmd.Flags().Bool("refs", true, "Include reference sections in the output")
	cmd.Flags().Bool("json", false, "Emit machine-readable JSON instead of text")

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	sourceFile, _ := cmd.Flags().GetString("source-file")
	paths, _ := cmd.Flags().GetStringSlice("paths")
	refs, _ := cmd.Flags().GetBool("refs")
	asJSON, _ := cmd.Flags().GetBool("json")

	m, err := repomap.New(repomap.Config{
		Root:        viper.GetString("root"),
		Excludes:    viper.GetStringSlice("exclude"),
		Concurrency: viper.GetInt("concurrency"),
		Verbose:     viper.GetBool("verbose"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	nav, err := m.Find(ctx, repomap.FindRequest{
		Symbols:         args,
		Paths:           paths,
		SourceFile:      sourceFile,
		IncludeSnippets: asJSON,
	})
	if err != nil {
		return err
	}

	if asJSON {
		return printNavigation(nav)
	}

	fmt.Println(nav.Render(m.Renderer(), types.RenderOptions{IncludeReferences: refs}))
	return nil
}

// printNavigation outputs the navigation result as JSON to stdout.
func printNavigation(nav *types.MultiSymbolNavigation) error {
	type symbolOut struct {
		Symbol      string                 `json:"symbol"`
		Kind        string                 `json:"kind"`
		Found       bool                   `json:"found"`
		Definitions []types.SymbolLocation `json:"definitions"`
		References  []types.SymbolLocation `json:"references"`
	}

	out := make([]symbolOut, 0, len(nav.Requested))
	for _, name := range nav.Requested {
		sym := nav.Symbols[name]
		out = append(out, symbolOut{
			Symbol:      name,
			Kind:        sym.Kind,
			Found:       sym.Found(),
			Definitions: sym.Definitions,
			References:  sym.References,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
