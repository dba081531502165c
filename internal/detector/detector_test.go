// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"testing"

	"actscan/internal/sections"
)

func TestCollect_CountsSectionKeywordPairs(t *testing.T) {
	secs := []sections.Section{
		{Title: "Section 1", Text: "A claimant is entitled to an allowance if eligible."},
		{Title: "Section 2", Text: "The claimant must notify the Department."},
	}
	coll := NewCollector()

	// "claimant" matches both sections, "entitled" only the first: three
	// (section, keyword) pairs in section-major, keyword-minor order.
	got := coll.Collect(secs, []string{"entitled", "claimant"})
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	wantOrder := []struct{ title, keyword string }{
		{"Section 1", "entitled"},
		{"Section 1", "claimant"},
		{"Section 2", "claimant"},
	}
	for i, want := range wantOrder {
		if got[i].SectionTitle != want.title || got[i].Keyword != want.keyword {
			t.Errorf("match %d = (%q, %q), want (%q, %q)",
				i, got[i].SectionTitle, got[i].Keyword, want.title, want.keyword)
		}
	}
}

func TestCollect_OnePairPerKeywordNotMerged(t *testing.T) {
	secs := []sections.Section{
		{Title: "Section 1", Text: "penalty and fine and penalty again"},
	}
	got := NewCollector().Collect(secs, []string{"penalty", "fine"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches (one per keyword), got %d", len(got))
	}
	if len(got[0].Contexts) != 2 {
		t.Errorf("expected 2 context snippets for the repeated keyword, got %d", len(got[0].Contexts))
	}
}

func TestCollect_CapsContextsPerMatch(t *testing.T) {
	secs := []sections.Section{
		{Title: "Section 1", Text: strings.Repeat("a fine thing. ", 10)},
	}
	got := NewCollector().WithMaxContexts(2).Collect(secs, []string{"fine"})
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if len(got[0].Contexts) != 2 {
		t.Errorf("contexts capped at 2, got %d", len(got[0].Contexts))
	}
}

func TestCollect_NoMatches(t *testing.T) {
	secs := []sections.Section{{Title: "Section 1", Text: "nothing relevant"}}
	if got := NewCollector().Collect(secs, []string{"penalty"}); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestCollect_EmptySections(t *testing.T) {
	if got := NewCollector().Collect(nil, []string{"penalty"}); len(got) != 0 {
		t.Errorf("expected no matches for nil sections, got %v", got)
	}
}

func TestCollect_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("t", 300)
	secs := []sections.Section{{Title: long, Text: "a penalty applies"}}
	got := NewCollector().Collect(secs, []string{"penalty"})
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if len(got[0].SectionTitle) != sections.MaxTitleLength {
		t.Errorf("title length = %d, want %d", len(got[0].SectionTitle), sections.MaxTitleLength)
	}
}
