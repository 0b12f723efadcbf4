// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/repograph/pkg/repomap"
)

// newMapCmd creates the "map" command.
func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [paths...]",
		Short: "Render a ranked repository map",
		Long:  "Map discovers the given files or directories (the whole root by default), ranks their definitions by reference structure, and prints the largest map that fits the token budget.",
		RunE:  runMap,
	}

	cmd.Flags().StringSlice("focus", nil, "Files whose neighborhoods should dominate the map")
	cmd.Flags().StringSlice("mention", nil, "Identifier names to boost")

	return cmd
}

func runMap(cmd *cobra.Command, args []string) error {
	focus, _ := cmd.Flags().GetStringSlice("focus")
	mention, _ := cmd.Flags().GetStringSlice("mention")

	m, err := repomap.New(repomap.Config{
		Root:        viper.GetString("root"),
		MaxTokens:   viper.GetInt("max-tokens"),
		Excludes:    viper.GetStringSlice("exclude"),
		Concurrency: viper.GetInt("concurrency"),
		Verbose:     viper.GetBool("verbose"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := m.RepoMap(ctx, repomap.MapRequest{
		Paths:           args,
		FocusFiles:      focus,
		MentionedIdents: mention,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Map)
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "definitions: %d, references: %d, files: %d\n",
			result.Report.DefinitionMatches,
			result.Report.ReferenceMatches,
			result.Report.TotalFilesConsidered)
	}
	return nil
}
