// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv2calibre CLI.
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

// rootCmd is the single import command: it takes positional arXiv
// identifiers and runs the fetch/download/import sequence for each.
var rootCmd = &cobra.Command{
	Use:   "arxiv2calibre [identifiers...]",
	Short: "Import arXiv papers into a Calibre library",
	Long: `arxiv2calibre fetches paper metadata and PDFs from arXiv and registers
them into a local Calibre library with calibredb. For each identifier it
queries the arXiv API, downloads the PDF into a temporary file, adds the
file to the library, and sets tags, publisher, and publication date on
the new record.

The Calibre library location comes from the ARXIV_LIBRARY_PATH environment
variable or the --library flag; when neither is set, calibredb uses its
default library.`,
	Args: cobra.ArbitraryArgs,
	RunE: runImport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv2calibre.yaml or ~/.config/arxiv2calibre/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv2calibre")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv2calibre"))
		}
	}

	viper.SetEnvPrefix("ARXIV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
