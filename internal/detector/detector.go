// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"actscan/internal/sections"
)

// ContextMatch records the evidence found for one keyword inside one
// section: the section's title, the keyword, and the context snippets
// around each occurrence (capped by the Collector).
type ContextMatch struct {
	SectionTitle string   `json:"section_title"`
	Keyword      string   `json:"keyword"`
	Contexts     []string `json:"contexts"`
}

// Collector scans sections for a field's keywords and aggregates one
// ContextMatch per (section, keyword) pair with at least one occurrence.
type Collector struct {
	Extractor *ContextExtractor

	// MaxContexts caps the snippet list inside a single ContextMatch.
	// The cap is owned here, not by the extractor.
	MaxContexts int
}

// NewCollector creates a collector with default settings.
func NewCollector() *Collector {
	return &Collector{
		Extractor:   NewContextExtractor(),
		MaxContexts: 3,
	}
}

// WithMaxContexts sets the per-match snippet cap.
func (c *Collector) WithMaxContexts(n int) *Collector {
	c.MaxContexts = n
	return c
}

// Collect runs the context extractor over every section for every keyword,
// section-major and keyword-minor, preserving both orders. The length of
// the returned list is the field's hit count: it counts (section, keyword)
// co-occurrences, not raw substring occurrences, so a section matching two
// keywords contributes two entries.
func (c *Collector) Collect(secs []sections.Section, keywords []string) []ContextMatch {
	var found []ContextMatch
	for _, sec := range secs {
		for _, kw := range keywords {
			contexts := c.Extractor.ExtractContexts(sec.Text, kw)
			if len(contexts) == 0 {
				continue
			}
			if c.MaxContexts > 0 && len(contexts) > c.MaxContexts {
				contexts = contexts[:c.MaxContexts]
			}
			found = append(found, ContextMatch{
				SectionTitle: sections.TruncateRunes(sec.Title, sections.MaxTitleLength),
				Keyword:      kw,
				Contexts:     contexts,
			})
		}
	}
	return found
}
