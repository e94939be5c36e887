// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperMetadata holds the fields extracted from one arXiv API entry.
// It is constructed once per identifier and not mutated afterwards.
type PaperMetadata struct {
	// ID is the canonical identifier URL returned by the arXiv API
	// (e.g. "http://arxiv.org/abs/2101.00001v1").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-collapsed and with known
	// LaTeX escape sequences substituted.
	Title string `json:"title" yaml:"title"`

	// Author is the comma-joined list of author display names in the
	// order the API returned them. Duplicates are kept.
	Author string `json:"author" yaml:"author"`

	// Pubdate is the publication timestamp exactly as returned by the
	// API (RFC 3339 style, e.g. "2021-01-01T18:58:28Z").
	Pubdate string `json:"pubdate" yaml:"pubdate"`

	// Summary is the abstract text, verbatim.
	Summary string `json:"summary" yaml:"summary"`
}
