// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reflist reads reference-list files: YAML documents naming the
// arXiv identifiers to import.
package reflist

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// File is the on-disk representation of a reference list.
type File struct {
	References []string `yaml:"references"`
}

// Read loads a reference-list file and returns its identifiers, trimmed
// and with empty entries dropped.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference list: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing reference list %s: %w", path, err)
	}

	var ids []string
	for _, ref := range f.References {
		if ref = strings.TrimSpace(ref); ref != "" {
			ids = append(ids, ref)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("reference list %s names no identifiers", path)
	}
	return ids, nil
}
