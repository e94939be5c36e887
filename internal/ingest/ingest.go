// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest runs the fetch, download, and import sequence for a
// batch of arXiv identifiers.
package ingest

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/arxiv2calibre/internal/arxiv"
	"github.com/pdiddy/arxiv2calibre/pkg/types"
)

// LibraryImporter registers a PDF into the document library and returns
// the record id the library assigned.
type LibraryImporter interface {
	Import(pdfPath string, meta types.PaperMetadata) (string, error)
}

// Pipeline processes identifiers strictly in input order: metadata fetch,
// PDF download into a scoped temporary file, library import. The first
// error aborts the whole batch; there is no per-identifier isolation.
type Pipeline struct {
	Client   *http.Client
	Importer LibraryImporter
	Config   types.FetchConfig
	Out      io.Writer
}

// Run imports each identifier in turn. Identifiers imported before a
// failure stay in the library; there is no rollback.
func (p *Pipeline) Run(ids []string) error {
	for _, id := range ids {
		if err := p.importOne(id); err != nil {
			return fmt.Errorf("importing %s: %w", id, err)
		}
	}
	return nil
}

// importOne runs the three steps for a single identifier. The temporary
// PDF is removed before returning, on success and on error.
func (p *Pipeline) importOne(id string) error {
	meta, err := arxiv.FetchMetadata(p.Client, id, p.Config)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.Out, "fetched:    %s (%s)\n", id, meta.Title)

	pdf, err := arxiv.DownloadPDF(p.Client, id, p.Config)
	if err != nil {
		return err
	}
	defer func() {
		if err := pdf.Close(); err != nil {
			fmt.Fprintf(p.Out, "warning: could not remove temp PDF %s: %v\n", pdf.Path, err)
		}
	}()
	fmt.Fprintf(p.Out, "downloaded: %s -> %s\n", id, pdf.Path)

	bookID, err := p.Importer.Import(pdf.Path, meta)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.Out, "imported:   %s (book id %s)\n", id, bookID)
	return nil
}
