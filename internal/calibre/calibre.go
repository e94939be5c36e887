// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calibre registers PDFs into a Calibre library through the
// calibredb command-line tool.
package calibre

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv2calibre/pkg/types"
)

const (
	binCalibredb = "calibredb"

	// addTag is attached to every imported book at add time.
	addTag = "arXiv"

	// Metadata set on the record after the add.
	metaTags      = "science.arXiv"
	metaPublisher = "arXiv"
)

// executor abstracts command execution for testing.
type executor interface {
	// Output runs the command and returns its standard output.
	Output(name string, args ...string) ([]byte, error)

	// Run runs the command, discarding output.
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, err
	}
	return out, nil
}

func (o *osExecutor) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// addedIDPattern matches the confirmation line calibredb prints after a
// successful add, anchored at line start.
var addedIDPattern = regexp.MustCompile(`^Added book ids: (\d+)`)

// Importer adds PDFs to a Calibre library and sets their metadata.
type Importer struct {
	cfg  types.ImportConfig
	exec executor
}

// NewImporter creates an Importer. cfg.Library selects the library every
// calibredb invocation operates on; empty uses the tool's default.
func NewImporter(cfg types.ImportConfig) *Importer {
	return &Importer{cfg: cfg, exec: &osExecutor{}}
}

// Add registers the PDF with author, title, and the fixed arXiv tag, and
// returns the book id calibredb assigned to the new record.
func (im *Importer) Add(pdfPath string, meta types.PaperMetadata) (string, error) {
	args := []string{"add", "-a", meta.Author, "-t", meta.Title, "-T", addTag}
	args = im.withLibrary(args)
	args = append(args, pdfPath)

	out, err := im.exec.Output(binCalibredb, args...)
	if err != nil {
		return "", fmt.Errorf("calibredb add: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if m := addedIDPattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("calibredb did not report a book id for %q", meta.Title)
}

// SetMetadata sets tags, publisher, and pubdate on a previously added book.
// Only the exit status is checked.
func (im *Importer) SetMetadata(bookID string, meta types.PaperMetadata) error {
	args := []string{
		"set_metadata",
		"-f", "tags:" + metaTags,
		"-f", "publisher:" + metaPublisher,
		"-f", "pubdate:" + meta.Pubdate,
	}
	args = im.withLibrary(args)
	args = append(args, bookID)

	if err := im.exec.Run(binCalibredb, args...); err != nil {
		return fmt.Errorf("calibredb set_metadata for book %s: %w", bookID, err)
	}
	return nil
}

// Import adds the PDF and then sets its extended metadata, returning the
// new book id.
func (im *Importer) Import(pdfPath string, meta types.PaperMetadata) (string, error) {
	bookID, err := im.Add(pdfPath, meta)
	if err != nil {
		return "", err
	}
	if err := im.SetMetadata(bookID, meta); err != nil {
		return "", err
	}
	return bookID, nil
}

func (im *Importer) withLibrary(args []string) []string {
	if im.cfg.Library != "" {
		return append(args, "--with-library", im.cfg.Library)
	}
	return args
}
