// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the actscan configuration directory. The
// ACTSCAN_CONFIG_DIR environment variable overrides the default under the
// user's home directory.
func GetConfigDir() string {
	if dir := os.Getenv("ACTSCAN_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".actscan"
	}
	return filepath.Join(home, ".actscan")
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// DefaultOutputDir is where run artifacts land unless overridden.
const DefaultOutputDir = "outputs"

// SectionsFile returns the sections interchange file path under outputDir.
func SectionsFile(outputDir string) string {
	return filepath.Join(outputDir, "extracted_sections.json")
}

// ReportFile returns the final report path under outputDir.
func ReportFile(outputDir string) string {
	return filepath.Join(outputDir, "report.json")
}

// DebugFile returns the verbose debug report path under outputDir.
func DebugFile(outputDir string) string {
	return filepath.Join(outputDir, "report_debug.json")
}

// SummaryFile returns the final summary path under outputDir.
func SummaryFile(outputDir string) string {
	return filepath.Join(outputDir, "summary.json")
}

// SummaryCheckpointFile returns the summarizer checkpoint path under
// outputDir.
func SummaryCheckpointFile(outputDir string) string {
	return filepath.Join(outputDir, "summary_intermediate.json")
}
