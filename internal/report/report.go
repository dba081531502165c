// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"actscan/internal/rules"
)

// Provenance identifies the source document and run that produced a
// report.
type Provenance struct {
	SourceFile string `json:"source_file"`
	RunID      string `json:"run_id,omitempty"`
	PageCount  int    `json:"page_count,omitempty"`
	PDFVersion string `json:"pdf_version,omitempty"`
}

// Report is the final artifact of the rule-checking stage.
type Report struct {
	ReportFields map[string]rules.FieldReport `json:"report_fields"`
	RuleChecks   []rules.Verdict              `json:"rule_checks"`
	Provenance   Provenance                   `json:"provenance"`
}

// Debug is the verbose companion artifact, carrying the full per-field
// detail for inspection. Its content mirrors ReportFields.
type Debug struct {
	Debug map[string]rules.FieldReport `json:"debug"`
}

// Assemble merges field reports and rule verdicts into the final report.
func Assemble(fields map[string]rules.FieldReport, verdicts []rules.Verdict, prov Provenance) *Report {
	return &Report{
		ReportFields: fields,
		RuleChecks:   verdicts,
		Provenance:   prov,
	}
}

// Write persists the report and its debug companion as indented JSON,
// creating parent directories on a best-effort basis. I/O failures
// propagate to the caller.
func Write(reportPath, debugPath string, r *Report) error {
	if err := writeJSON(reportPath, r); err != nil {
		return err
	}
	return writeJSON(debugPath, Debug{Debug: r.ReportFields})
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
