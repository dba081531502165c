// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingInput indicates the sections JSON file does not exist. The
// extraction stage has to run before the downstream stages can.
var ErrMissingInput = errors.New("sections file missing")

// DocumentInfo carries provenance recorded by the extraction stage.
type DocumentInfo struct {
	SourceFile string `json:"source_file"`
	PageCount  int    `json:"page_count,omitempty"`
	PDFVersion string `json:"pdf_version,omitempty"`
}

// File is the on-disk interchange format between the extraction stage and
// the rule-checking and summarization stages.
type File struct {
	Document *DocumentInfo `json:"document,omitempty"`
	Sections []Section     `json:"sections"`
}

// Load reads a sections file from path. A missing file returns an error
// wrapping ErrMissingInput. A file that parses but has no "sections" key
// degrades to an empty section list rather than failing, so every field
// downstream reports "missing" instead of the run aborting.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run the extract stage first)", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("reading sections file %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing sections file %s: %w", path, err)
	}
	if f.Sections == nil {
		f.Sections = []Section{}
	}
	return &f, nil
}

// Save writes a sections file to path, creating parent directories on a
// best-effort basis.
func Save(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sections: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing sections file %s: %w", path, err)
	}
	return nil
}
