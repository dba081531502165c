// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"actscan/internal/rules"
)

func sampleReport() *Report {
	fields := map[string]rules.FieldReport{
		"penalties": {Status: rules.StatusPresent, NumHits: 2},
	}
	verdicts := []rules.Verdict{
		{Rule: "Act must include enforcement or penalties", Status: rules.StatusPass, Evidence: []string{"Section 9 — snippet"}, Confidence: 95},
		{Rule: "Act must define key terms", Status: rules.StatusFail, Evidence: []string{}, Confidence: 30},
	}
	return Assemble(fields, verdicts, Provenance{SourceFile: "data/act.pdf", RunID: "run-1"})
}

func TestWrite_ProducesBothArtifacts(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "nested", "report.json")
	debugPath := filepath.Join(dir, "nested", "report_debug.json")

	if err := Write(reportPath, debugPath, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var rep map[string]json.RawMessage
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	for _, key := range []string{"report_fields", "rule_checks", "provenance"} {
		if _, ok := rep[key]; !ok {
			t.Errorf("report missing %q key", key)
		}
	}

	data, err = os.ReadFile(debugPath)
	if err != nil {
		t.Fatalf("debug artifact not written: %v", err)
	}
	var dbg map[string]json.RawMessage
	if err := json.Unmarshal(data, &dbg); err != nil {
		t.Fatalf("debug artifact is not valid JSON: %v", err)
	}
	if _, ok := dbg["debug"]; !ok {
		t.Error("debug artifact missing \"debug\" key")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, sampleReport(), true)
	out := buf.String()

	if !strings.Contains(out, "data/act.pdf") {
		t.Errorf("summary missing source file: %q", out)
	}
	if !strings.Contains(out, "[PASS] Act must include enforcement or penalties (confidence 95)") {
		t.Errorf("summary missing pass line: %q", out)
	}
	if !strings.Contains(out, "[FAIL] Act must define key terms (confidence 30)") {
		t.Errorf("summary missing fail line: %q", out)
	}
	if !strings.Contains(out, "1 of 2 rules passed") {
		t.Errorf("summary missing totals: %q", out)
	}
}
