// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContextExtractor extracts bounded context windows around keyword
// occurrences in a section's text.
type ContextExtractor struct {
	// Number of characters before and after the match to include
	ContextChars int
}

// NewContextExtractor creates a new context extractor with default settings
func NewContextExtractor() *ContextExtractor {
	return &ContextExtractor{
		ContextChars: 200,
	}
}

// WithContextChars sets the number of context characters
func (ce *ContextExtractor) WithContextChars(chars int) *ContextExtractor {
	ce.ContextChars = chars
	return ce
}

// ExtractContexts finds every case-insensitive, literal, non-overlapping
// occurrence of keyword in text and returns one snippet per occurrence in
// document order. Each snippet spans ContextChars before the match start
// to ContextChars after the match end, clipped to the text boundaries,
// with embedded newlines collapsed to spaces. No occurrences means an
// empty result, never an error.
func (ce *ContextExtractor) ExtractContexts(text, keyword string) []string {
	if text == "" || keyword == "" {
		return nil
	}

	lowerText, offsets := lowerWithOffsets(text)
	lowerKeyword := strings.ToLower(keyword)

	var snippets []string
	for from := 0; from <= len(lowerText)-len(lowerKeyword); {
		i := strings.Index(lowerText[from:], lowerKeyword)
		if i < 0 {
			break
		}
		matchStart := offsets[from+i]
		matchEnd := offsets[from+i+len(lowerKeyword)]

		start := alignRuneStart(text, max(0, matchStart-ce.ContextChars))
		end := alignRuneStart(text, min(len(text), matchEnd+ce.ContextChars))

		snippet := strings.TrimSpace(strings.ReplaceAll(text[start:end], "\n", " "))
		snippets = append(snippets, snippet)

		from = from + i + len(lowerKeyword)
	}
	return snippets
}

// lowerWithOffsets lowercases text one rune at a time, the same mapping
// strings.ToLower applies, and records for every byte of the lowered
// string the byte offset of the originating rune in text. Lowercasing can
// change a rune's encoded length, so match offsets found in the lowered
// string must be translated back before slicing text. A trailing entry
// maps the end of the lowered string to len(text).
func lowerWithOffsets(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(text))
	return b.String(), offsets
}

// alignRuneStart moves a byte offset backwards until it sits on a rune
// boundary, so window clipping never splits a multi-byte character.
func alignRuneStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
