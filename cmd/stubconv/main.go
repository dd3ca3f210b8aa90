// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the stubconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the stubconv CLI.
var rootCmd = &cobra.Command{
	Use:   "stubconv",
	Short: "Convert dotfile-manager application stubs into alternate layouts",
	Long: `stubconv reads the per-application configuration stubs shipped by a
dotfile manager (INI-style .cfg files, one per application, each listing
the file paths to back up) and converts them into alternate layouts.

Each output layout is a subcommand: flatten explodes the stubs into a
per-application directory tree, consolidate merges them into a single
JSON lookup table.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./stubconv.yaml or ~/.config/stubconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stubconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "stubconv"))
		}
	}

	viper.SetEnvPrefix("STUBCONV")
	viper.AutomaticEnv()

	viper.SetDefault("source.candidate_dirs", []string{
		filepath.Join("mackup", "applications"),
		filepath.Join("src", "mackup", "applications"),
	})
	viper.SetDefault("source.stub_ext", ".cfg")
	viper.SetDefault("source.progress_interval", 50)
	viper.SetDefault("flatten.output_dir", "config_db")
	viper.SetDefault("flatten.ext", ".conf")
	viper.SetDefault("consolidate.repo_url", "https://github.com/lra/mackup.git")
	viper.SetDefault("consolidate.clone_dir", filepath.Join(os.TempDir(), "mackup_for_stubconv"))
	viper.SetDefault("consolidate.output_path", filepath.Join("data", "default_db.json"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
