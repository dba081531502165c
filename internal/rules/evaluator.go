// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"actscan/internal/detector"
	"actscan/internal/sections"
)

// Field status values.
const (
	StatusPresent = "present"
	StatusMissing = "missing"
)

// Verdict status values.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Confidence scores are a fixed function of verdict status, not of hit
// counts.
const (
	ConfidencePass           = 95
	ConfidencePassNoEvidence = 90
	ConfidenceFail           = 30
)

// MaxExamples caps the evidence examples retained per field report.
const MaxExamples = 5

// evidenceSnippetLength caps the context portion of a verdict citation.
const evidenceSnippetLength = 300

// FieldReport summarizes the evidence collected for one field. NumHits is
// the number of (section, keyword) matches, and is zero exactly when
// Status is "missing".
type FieldReport struct {
	Status   string                  `json:"status"`
	NumHits  int                     `json:"num_hits"`
	Examples []detector.ContextMatch `json:"examples"`
}

// Verdict is the pass/fail outcome of one drafting rule, with at most one
// evidence citation and a fixed confidence score.
type Verdict struct {
	Rule       string   `json:"rule"`
	Status     string   `json:"status"`
	Evidence   []string `json:"evidence"`
	Confidence int      `json:"confidence"`
}

// Check pairs a drafting-rule description with the report field that
// carries its evidence.
type Check struct {
	Rule  string
	Field string
}

// Checks returns the fixed table of the six drafting rules, in report
// order. Each rule maps 1:1 onto one field.
func Checks() []Check {
	return []Check{
		{Rule: "Act must define key terms", Field: "definitions"},
		{Rule: "Act must specify eligibility criteria", Field: "eligibility"},
		{Rule: "Act must specify responsibilities of the administering authority", Field: "responsibilities"},
		{Rule: "Act must include enforcement or penalties", Field: "penalties"},
		{Rule: "Act must include payment calculation or entitlement structure", Field: "payments"},
		{Rule: "Act must include record-keeping or reporting requirements", Field: "record_keeping"},
	}
}

// BuildFieldReports collects evidence for every keyword set over the given
// sections and folds it into per-field reports. Every configured field
// gets a report, present or missing.
func BuildFieldReports(secs []sections.Section, sets []KeywordSet, coll *detector.Collector) map[string]FieldReport {
	reports := make(map[string]FieldReport, len(sets))
	for _, set := range sets {
		hits := coll.Collect(secs, set.Keywords)
		if len(hits) == 0 {
			reports[set.Field] = FieldReport{
				Status:   StatusMissing,
				NumHits:  0,
				Examples: []detector.ContextMatch{},
			}
			continue
		}
		examples := hits
		if len(examples) > MaxExamples {
			examples = examples[:MaxExamples]
		}
		reports[set.Field] = FieldReport{
			Status:   StatusPresent,
			NumHits:  len(hits),
			Examples: examples,
		}
	}
	return reports
}

// Evaluate turns the per-field reports into the six rule verdicts, in
// table order. A rule passes exactly when its field is present; a passing
// rule cites its field's first example as "<section title> — <snippet>".
// A field with no report at all counts as missing.
func Evaluate(fields map[string]FieldReport) []Verdict {
	checks := Checks()
	verdicts := make([]Verdict, 0, len(checks))
	for _, check := range checks {
		fr, ok := fields[check.Field]
		if !ok || fr.Status != StatusPresent {
			verdicts = append(verdicts, Verdict{
				Rule:       check.Rule,
				Status:     StatusFail,
				Evidence:   []string{},
				Confidence: ConfidenceFail,
			})
			continue
		}

		v := Verdict{
			Rule:       check.Rule,
			Status:     StatusPass,
			Evidence:   []string{},
			Confidence: ConfidencePassNoEvidence,
		}
		if len(fr.Examples) > 0 {
			v.Evidence = []string{citation(fr.Examples[0])}
			v.Confidence = ConfidencePass
		}
		verdicts = append(verdicts, v)
	}
	return verdicts
}

func citation(ex detector.ContextMatch) string {
	snippet := ""
	if len(ex.Contexts) > 0 {
		snippet = sections.TruncateRunes(ex.Contexts[0], evidenceSnippetLength)
	}
	return ex.SectionTitle + " — " + snippet
}
