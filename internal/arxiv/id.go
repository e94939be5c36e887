// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"regexp"
	"strings"
)

// newIDPattern matches modern arXiv identifiers: "2101.00001",
// "arXiv:2101.00001", "2101.00001v2".
var newIDPattern = regexp.MustCompile(`^(?:arXiv:)?(\d{4}\.\d{4,5}(?:v\d+)?)$`)

// oldIDPattern matches pre-2007 identifiers such as "hep-th/9901001" or
// "math.GT/0309136v2".
var oldIDPattern = regexp.MustCompile(`^(?:arXiv:)?([a-z-]+(?:\.[A-Z]{2})?/\d{7}(?:v\d+)?)$`)

// NormalizeID validates an arXiv identifier and strips the optional
// "arXiv:" prefix. Unrecognized formats are rejected before any network
// request is made.
func NormalizeID(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)

	if m := newIDPattern.FindStringSubmatch(identifier); m != nil {
		return m[1], nil
	}
	if m := oldIDPattern.FindStringSubmatch(identifier); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("unrecognized arXiv identifier: %q", identifier)
}
