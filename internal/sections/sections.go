// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the cap applied to section titles derived from the
// first line of a segment.
const MaxTitleLength = 200

// Section is one titled, addressable unit of the source document.
// Sections are created once by Split and never mutated afterwards.
type Section struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (including newlines) into a
// single space and trims leading/trailing whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// headingBoundary matches a newline immediately followed by one of the
// heading tokens used in UK Acts. The split happens after the newline, so
// the token starts its own segment.
var headingBoundary = regexp.MustCompile(`\n(?:Section|SECTION|SCHEDULE|Schedule|CHAPTER|CONTENTS|Short title)\b`)

// Split divides the aggregated document text into titled sections at
// heading boundaries, preserving document order. A document with no
// heading tokens yields a single section holding the whole text. Segments
// that are empty after trimming are dropped.
func Split(text string) []Section {
	boundaries := headingBoundary.FindAllStringIndex(text, -1)

	var segments []string
	start := 0
	for _, b := range boundaries {
		// b[0] is the newline; the segment boundary sits just after it.
		segments = append(segments, text[start:b[0]])
		start = b[0] + 1
	}
	segments = append(segments, text[start:])

	var result []Section
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		firstLine, _, _ := strings.Cut(seg, "\n")
		result = append(result, Section{
			Title: TruncateRunes(strings.TrimSpace(firstLine), MaxTitleLength),
			Text:  Normalize(seg),
		})
	}
	return result
}

// TruncateRunes shortens s to at most n runes without splitting a
// multi-byte character.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
