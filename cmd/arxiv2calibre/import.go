package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv2calibre/internal/arxiv"
	"github.com/pdiddy/arxiv2calibre/internal/calibre"
	"github.com/pdiddy/arxiv2calibre/internal/ingest"
	"github.com/pdiddy/arxiv2calibre/internal/reflist"
	"github.com/pdiddy/arxiv2calibre/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "arxiv2calibre/0.1"
)

func init() {
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.Flags().String("refs-file", "", "YAML file naming additional identifiers to import")
	rootCmd.Flags().String("library", "", "Calibre library location (overrides ARXIV_LIBRARY_PATH)")
}

func runImport(cmd *cobra.Command, args []string) error {
	ids := append([]string(nil), args...)

	refsFile, _ := cmd.Flags().GetString("refs-file")
	if refsFile != "" {
		fromFile, err := reflist.Read(refsFile)
		if err != nil {
			return err
		}
		ids = append(ids, fromFile...)
	}
	if len(ids) == 0 {
		return fmt.Errorf("provide one or more arXiv identifiers (e.g. 2101.00001)")
	}

	for i, id := range ids {
		normalized, err := arxiv.NormalizeID(id)
		if err != nil {
			return err
		}
		ids[i] = normalized
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	library, _ := cmd.Flags().GetString("library")
	if library == "" {
		library = viper.GetString("library_path")
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
	}

	pipeline := &ingest.Pipeline{
		Client:   &http.Client{Timeout: cfg.Timeout},
		Importer: calibre.NewImporter(types.ImportConfig{Library: library}),
		Config:   cfg,
		Out:      os.Stdout,
	}
	return pipeline.Run(ids)
}
