// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"actscan/internal/config"
	"actscan/internal/detector"
	"actscan/internal/report"
	"actscan/internal/rules"
	"actscan/internal/sections"
)

// CheckConfig holds configuration for the rule-checking stage.
type CheckConfig struct {
	SectionsPath string
	ReportPath   string
	DebugPath    string
	Config       *config.Config
}

// CheckResult holds the outcome of a rule-checking run.
type CheckResult struct {
	Report       *report.Report
	SectionCount int
}

// RunCheck performs the evidence-collection and rule-evaluation pipeline
// shared by the CLI modes: load sections, collect per-field keyword
// evidence, evaluate the six drafting rules, and persist the report plus
// its debug companion. Nothing is written when loading fails.
func RunCheck(checkConfig CheckConfig) (*CheckResult, error) {
	f, err := sections.Load(checkConfig.SectionsPath)
	if err != nil {
		return nil, err
	}

	coll := detector.NewCollector().WithMaxContexts(checkConfig.Config.Scan.MaxContexts)
	coll.Extractor.WithContextChars(checkConfig.Config.Scan.ContextChars)

	sets := KeywordSets(checkConfig.Config)
	fields := rules.BuildFieldReports(f.Sections, sets, coll)
	verdicts := rules.Evaluate(fields)

	prov := report.Provenance{
		SourceFile: "unknown",
		RunID:      uuid.NewString(),
	}
	if f.Document != nil {
		if f.Document.SourceFile != "" {
			prov.SourceFile = f.Document.SourceFile
		}
		prov.PageCount = f.Document.PageCount
		prov.PDFVersion = f.Document.PDFVersion
	}

	rep := report.Assemble(fields, verdicts, prov)
	if err := report.Write(checkConfig.ReportPath, checkConfig.DebugPath, rep); err != nil {
		return nil, err
	}

	log.Info().Int("sections", len(f.Sections)).Int("rules", len(verdicts)).
		Str("report", checkConfig.ReportPath).Msg("rule check complete")

	return &CheckResult{Report: rep, SectionCount: len(f.Sections)}, nil
}

// KeywordSets returns the built-in keyword table with any per-field config
// overrides applied. Field order is the built-in order; overrides for
// unknown fields are ignored.
func KeywordSets(cfg *config.Config) []rules.KeywordSet {
	sets := rules.DefaultKeywordSets()
	if len(cfg.Keywords) == 0 {
		return sets
	}
	for i, set := range sets {
		if kws, ok := cfg.Keywords[set.Field]; ok && len(kws) > 0 {
			sets[i].Keywords = kws
		}
	}
	return sets
}
