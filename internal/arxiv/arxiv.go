// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches paper metadata and PDFs from the arXiv API.
package arxiv

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv2calibre/pkg/types"
)

// Base URLs for the arXiv endpoints. Declared as vars so tests can
// substitute httptest servers.
var (
	APIBase = "http://export.arxiv.org/api/query"
	PDFBase = "https://arxiv.org/pdf/"
)

// defaultNSPattern matches a default XML namespace declaration. Only the
// first occurrence is stripped before parsing, so entry fields resolve by
// plain tag name. A second default-namespaced element nested inside the
// response would keep its declaration; the arXiv feed never nests one.
var defaultNSPattern = regexp.MustCompile(` xmlns="[^"]+"`)

// arXiv Atom feed XML structures.
type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	ID        string   `xml:"id"`
	Title     string   `xml:"title"`
	Summary   string   `xml:"summary"`
	Published string   `xml:"published"`
	Authors   []author `xml:"author"`
}

type author struct {
	Name string `xml:"name"`
}

// FetchMetadata queries the arXiv API for a single identifier and extracts
// the metadata fields from the first entry. The title passes through
// NormalizeTitle; author names are comma-joined in source order; pubdate
// and summary are kept verbatim.
func FetchMetadata(client *http.Client, id string, cfg types.FetchConfig) (types.PaperMetadata, error) {
	var meta types.PaperMetadata

	apiURL := fmt.Sprintf("%s?id_list=%s", APIBase, id)
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return meta, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return meta, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return meta, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return meta, fmt.Errorf("reading arXiv response: %w", err)
	}

	var f feed
	if err := xml.Unmarshal([]byte(stripDefaultNamespace(string(body))), &f); err != nil {
		return meta, fmt.Errorf("parsing arXiv response: %w", err)
	}
	if len(f.Entries) == 0 {
		return meta, fmt.Errorf("no entry found for arXiv ID %s", id)
	}

	e := f.Entries[0]
	names := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			names = append(names, name)
		}
	}

	meta = types.PaperMetadata{
		ID:      e.ID,
		Title:   NormalizeTitle(e.Title),
		Author:  strings.Join(names, ", "),
		Pubdate: e.Published,
		Summary: e.Summary,
	}

	required := []struct {
		field, value string
	}{
		{"id", meta.ID},
		{"title", meta.Title},
		{"author", meta.Author},
		{"published", meta.Pubdate},
		{"summary", meta.Summary},
	}
	for _, r := range required {
		if r.value == "" {
			return types.PaperMetadata{}, fmt.Errorf("arXiv entry for %s is missing %s", id, r.field)
		}
	}

	return meta, nil
}

// stripDefaultNamespace removes the first default xmlns declaration from
// the document, and only the first.
func stripDefaultNamespace(doc string) string {
	loc := defaultNSPattern.FindStringIndex(doc)
	if loc == nil {
		return doc
	}
	return doc[:loc[0]] + doc[loc[1]:]
}
