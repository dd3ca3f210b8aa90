// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stubconv/internal/flatten"
	"github.com/pdiddy/stubconv/internal/report"
	"github.com/pdiddy/stubconv/internal/stub"
	"github.com/pdiddy/stubconv/pkg/types"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <source_root> [output_dir]",
	Short: "Explode application stubs into a flat per-application tree",
	Long: `Flatten locates the application stubs beneath the given source root and
writes one small text file per application into each of three parallel
subdirectories: applications/ (display names), configuration_files/
(standard path listings), and xdg_configuration_files/ (XDG path
listings). Re-running against unchanged input overwrites with identical
content.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().String("manifest", "", "write a YAML run manifest to this path")

	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	srcRoot := args[0]
	if _, err := os.Stat(srcRoot); err != nil {
		return fmt.Errorf("source root %s: %w", srcRoot, err)
	}

	cfg := types.FlattenConfig{
		SourceConfig: sourceConfig(),
		OutputDir:    viper.GetString("flatten.output_dir"),
		FlatExt:      viper.GetString("flatten.ext"),
	}
	if len(args) == 2 {
		cfg.OutputDir = args[1]
	}

	srcDir, err := stub.Locate(srcRoot, cfg.CandidateDirs)
	if err != nil {
		return err
	}

	result, err := flatten.Run(srcDir, cfg, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("Output directory: %s\n", cfg.OutputDir)

	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		m := report.Manifest{
			Source:    srcDir,
			Output:    cfg.OutputDir,
			Processed: result.Flattened,
			Skipped:   result.Skipped,
			Timestamp: time.Now().UTC(),
		}
		if err := report.Write(path, m); err != nil {
			return err
		}
	}
	return nil
}

// sourceConfig assembles the locator settings shared by both modes.
func sourceConfig() types.SourceConfig {
	return types.SourceConfig{
		CandidateDirs:    viper.GetStringSlice("source.candidate_dirs"),
		StubExt:          viper.GetString("source.stub_ext"),
		ProgressInterval: viper.GetInt("source.progress_interval"),
	}
}
