// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the stages that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv2calibre/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the metadata and PDF fetch stages.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`
}

// ImportConfig holds settings for the Calibre import stage.
type ImportConfig struct {
	// Library is the Calibre library location passed to every calibredb
	// invocation via --with-library. Empty means the tool's default
	// library.
	Library string `json:"library,omitempty" yaml:"library,omitempty"`
}
