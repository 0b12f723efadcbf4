// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command repograph builds ranked repository maps and locates symbols
// across a codebase.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "repograph",
		Short: "Ranked repository maps and symbol navigation",
		Long:  "repograph parses a repository with tree-sitter, ranks files by reference structure, and renders a token-bounded map or symbol report.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("root", ".", "Repository root directory")
	rootCmd.PersistentFlags().Int("max-tokens", 8192, "Token budget for repository maps")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Extra gitignore-style exclude patterns")
	rootCmd.PersistentFlags().Int("concurrency", 0, "File readers (0 = number of CPUs)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Bind flags to viper.
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("max-tokens", rootCmd.PersistentFlags().Lookup("max-tokens"))
	viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: REPOGRAPH_ROOT, REPOGRAPH_MAX_TOKENS, etc.
	viper.SetEnvPrefix("REPOGRAPH")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".repograph")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newMapCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print repograph version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repograph %s\n", version)
		},
	}
}
