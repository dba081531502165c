// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

// KeywordSet maps one report field to the ordered keyword list whose
// presence counts as lexical evidence for it. Keyword order affects only
// which examples are selected first, not the verdict.
type KeywordSet struct {
	Field    string
	Keywords []string
}

// DefaultKeywordSets returns the built-in keyword table for UK-style
// legislative acts. Callers get a fresh copy; the table is configuration
// injected into the pipeline, not ambient global state.
func DefaultKeywordSets() []KeywordSet {
	return []KeywordSet{
		{Field: "definitions", Keywords: []string{
			"definition", "interpretation", "means", "defined", "definition:",
		}},
		{Field: "eligibility", Keywords: []string{
			"entitled", "eligible", "eligibility", "claimant", "entitlement", "entitlements",
		}},
		{Field: "obligations", Keywords: []string{
			"obligation", "duty", "must", "required to", "shall", "required",
		}},
		{Field: "responsibilities", Keywords: []string{
			"Secretary of State", "Department", "responsible for", "administer", "administrator", "authority",
		}},
		{Field: "payments", Keywords: []string{
			"amount", "allowance", "LCWRA", "standard allowance", "£", "amounts", "element",
		}},
		{Field: "penalties", Keywords: []string{
			"penalty", "penalties", "offence", "offences", "sanction", "fine",
			"liable", "enforce", "enforcement", "criminal", "punish",
		}},
		{Field: "record_keeping", Keywords: []string{
			"record", "report", "reporting", "keep a record", "retain", "returns",
			"register", "accounts", "audit", "retention", "submit",
		}},
	}
}
