// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stubconv/internal/consolidate"
	"github.com/pdiddy/stubconv/internal/fetch"
	"github.com/pdiddy/stubconv/internal/report"
	"github.com/pdiddy/stubconv/internal/stub"
	"github.com/pdiddy/stubconv/pkg/types"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Build the consolidated stub lookup table",
	Long: `Consolidate clones the upstream stub repository into a temporary
directory, merges every application stub into a single JSON lookup table
with sorted keys, writes it to the configured output path, and removes
the temporary clone. The clone is removed on failure and on interrupt as
well.`,
	Args: cobra.NoArgs,
	RunE: runConsolidate,
}

func init() {
	consolidateCmd.Flags().String("sqlite", "", "also write a SQLite index to this path")
	consolidateCmd.Flags().String("manifest", "", "write a YAML run manifest to this path")

	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := types.ConsolidateConfig{
		SourceConfig: sourceConfig(),
		RepoURL:      viper.GetString("consolidate.repo_url"),
		CloneDir:     viper.GetString("consolidate.clone_dir"),
		OutputPath:   viper.GetString("consolidate.output_path"),
	}
	cfg.SQLitePath, _ = cmd.Flags().GetString("sqlite")

	runner := fetch.NewGitRunner()
	if !runner.Available() {
		return fmt.Errorf("git not found on PATH")
	}

	// The clone is removed on every exit path, interrupt included.
	defer func() {
		if err := runner.Cleanup(cfg.CloneDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not remove %s: %v\n", cfg.CloneDir, err)
		}
	}()

	fmt.Fprintf(os.Stderr, "cloning %s\n", cfg.RepoURL)
	if err := runner.Clone(ctx, cfg.RepoURL, cfg.CloneDir); err != nil {
		return fmt.Errorf("fetching stub repository: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}

	srcDir, err := stub.Locate(cfg.CloneDir, cfg.CandidateDirs)
	if err != nil {
		return err
	}

	table, result, err := consolidate.Build(ctx, srcDir, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	if err := consolidate.WriteJSON(table, cfg.OutputPath); err != nil {
		return err
	}
	if cfg.SQLitePath != "" {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("interrupted: %w", err)
		}
		if err := consolidate.WriteSQLite(table, cfg.SQLitePath); err != nil {
			return err
		}
		fmt.Printf("SQLite index: %s\n", cfg.SQLitePath)
	}

	var size int64
	if info, err := os.Stat(cfg.OutputPath); err == nil {
		size = info.Size()
	}
	fmt.Printf("Output: %s (%.1f KB)\n", cfg.OutputPath, float64(size)/1024)

	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		m := report.Manifest{
			Source:      cfg.RepoURL,
			Output:      cfg.OutputPath,
			Processed:   result.Consolidated,
			Skipped:     result.Skipped,
			OutputBytes: size,
			Timestamp:   time.Now().UTC(),
		}
		if err := report.Write(path, m); err != nil {
			return err
		}
	}
	return nil
}
