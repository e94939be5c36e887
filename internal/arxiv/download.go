// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pdiddy/arxiv2calibre/pkg/types"
)

// TempPDF is a downloaded PDF held in a temporary file. Close removes the
// file; callers defer it so the file is gone on every exit path.
type TempPDF struct {
	Path string
}

// Close deletes the temporary file.
func (p *TempPDF) Close() error {
	return os.Remove(p.Path)
}

// DownloadPDF fetches the PDF for an arXiv identifier into a temporary
// file with a .pdf suffix. The file is fully written, synced, and closed
// before returning so a subprocess reading it sees every byte.
func DownloadPDF(client *http.Client, id string, cfg types.FetchConfig) (*TempPDF, error) {
	pdfURL := PDFBase + id + ".pdf"
	req, err := http.NewRequest(http.MethodGet, pdfURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PDF request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, pdfURL)
	}

	tmp, err := os.CreateTemp("", "arxiv2calibre-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("writing download: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("flushing download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	return &TempPDF{Path: tmpPath}, nil
}
