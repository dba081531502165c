// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Defaults.OutputDir != "outputs" {
		t.Errorf("output dir = %q", cfg.Defaults.OutputDir)
	}
	if cfg.Scan.ContextChars != 200 {
		t.Errorf("context chars = %d", cfg.Scan.ContextChars)
	}
	if cfg.Scan.MaxContexts != 3 {
		t.Errorf("max contexts = %d", cfg.Scan.MaxContexts)
	}
	if cfg.Summarizer.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.Summarizer.Model)
	}
	if cfg.Summarizer.ChunkChars != 1200 || cfg.Summarizer.MaxTokens != 400 || cfg.Summarizer.CombineMaxTokens != 800 {
		t.Errorf("summarizer sizing defaults wrong: %+v", cfg.Summarizer)
	}
	if cfg.Summarizer.Retries != 3 {
		t.Errorf("retries = %d", cfg.Summarizer.Retries)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actscan.yaml")
	content := `
defaults:
  output_dir: runs
  verbose: true
scan:
  context_chars: 100
  max_contexts: 2
keywords:
  definitions: ["glossary", "interpretation"]
summarizer:
  model: gpt-4o
  chunk_chars: 2000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Defaults.OutputDir != "runs" {
		t.Errorf("output dir = %q", cfg.Defaults.OutputDir)
	}
	if !cfg.Defaults.Verbose {
		t.Error("verbose should be true")
	}
	if cfg.Scan.ContextChars != 100 {
		t.Errorf("context chars = %d", cfg.Scan.ContextChars)
	}
	if got := cfg.Keywords["definitions"]; len(got) != 2 || got[0] != "glossary" {
		t.Errorf("keywords override = %v", got)
	}
	if cfg.Summarizer.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.Summarizer.Model)
	}
	// unspecified values keep their defaults
	if cfg.Summarizer.Retries != 3 {
		t.Errorf("retries = %d, want default 3", cfg.Summarizer.Retries)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative context chars", "scan:\n  context_chars: -1\n"},
		{"zero max contexts", "scan:\n  max_contexts: 0\n"},
		{"zero chunk chars", "summarizer:\n  chunk_chars: 0\n"},
		{"zero retries", "summarizer:\n  retries: 0\n"},
		{"empty keyword override", "keywords:\n  penalties: []\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "actscan.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ACTSCAN_MODEL", "gpt-4o")
	t.Setenv("ACTSCAN_OUTPUT_DIR", "elsewhere")
	t.Setenv("ACTSCAN_CONTEXT_CHARS", "150")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	ApplyEnvOverrides(cfg)

	if cfg.Summarizer.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Summarizer.APIKey)
	}
	if cfg.Summarizer.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.Summarizer.Model)
	}
	if cfg.Defaults.OutputDir != "elsewhere" {
		t.Errorf("output dir = %q", cfg.Defaults.OutputDir)
	}
	if cfg.Scan.ContextChars != 150 {
		t.Errorf("context chars = %d", cfg.Scan.ContextChars)
	}
}

func TestApplyEnvOverrides_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("ACTSCAN_CONTEXT_CHARS", "not-a-number")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	ApplyEnvOverrides(cfg)
	if cfg.Scan.ContextChars != 200 {
		t.Errorf("context chars = %d, want default 200", cfg.Scan.ContextChars)
	}
}
