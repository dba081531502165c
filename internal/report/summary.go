// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"actscan/internal/rules"
)

// PrintSummary writes a human-readable pass/fail summary of the rule
// checks to w. Colors are suppressed when noColor is set.
func PrintSummary(w io.Writer, r *Report, noColor bool) {
	passColor := color.New(color.FgGreen, color.Bold)
	failColor := color.New(color.FgRed, color.Bold)
	if noColor {
		passColor.DisableColor()
		failColor.DisableColor()
	}

	passed := 0
	fmt.Fprintf(w, "Rule checks for %s:\n", r.Provenance.SourceFile)
	for _, v := range r.RuleChecks {
		label := failColor.Sprint("FAIL")
		if v.Status == rules.StatusPass {
			label = passColor.Sprint("PASS")
			passed++
		}
		fmt.Fprintf(w, "  [%s] %s (confidence %d)\n", label, v.Rule, v.Confidence)
	}
	fmt.Fprintf(w, "%d of %d rules passed\n", passed, len(r.RuleChecks))
}
