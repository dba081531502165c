// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"actscan/internal/paths"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		OutputDir string `yaml:"output_dir"`
		Verbose   bool   `yaml:"verbose"`
		Debug     bool   `yaml:"debug"`
		NoColor   bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Evidence scan settings
	Scan struct {
		ContextChars int `yaml:"context_chars"`
		MaxContexts  int `yaml:"max_contexts"`
	} `yaml:"scan"`

	// Per-field keyword overrides; fields not listed keep the built-in
	// keyword sets.
	Keywords map[string][]string `yaml:"keywords"`

	// Summarizer settings
	Summarizer struct {
		Model            string `yaml:"model"`
		BaseURL          string `yaml:"base_url"`
		APIKey           string `yaml:"api_key"`
		DocumentTitle    string `yaml:"document_title"`
		ChunkChars       int    `yaml:"chunk_chars"`
		MaxTokens        int    `yaml:"max_tokens"`
		CombineMaxTokens int    `yaml:"combine_max_tokens"`
		Retries          int    `yaml:"retries"`
	} `yaml:"summarizer"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.OutputDir = paths.DefaultOutputDir
	config.Scan.ContextChars = 200
	config.Scan.MaxContexts = 3
	config.Summarizer.Model = "gpt-4o-mini"
	config.Summarizer.DocumentTitle = "the Act"
	config.Summarizer.ChunkChars = 1200
	config.Summarizer.MaxTokens = 400
	config.Summarizer.CombineMaxTokens = 800
	config.Summarizer.Retries = 3

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfig checks the configuration for values that would break the
// pipeline.
func ValidateConfig(config *Config) error {
	if config.Scan.ContextChars < 0 {
		return fmt.Errorf("scan.context_chars must not be negative, got %d", config.Scan.ContextChars)
	}
	if config.Scan.MaxContexts < 1 {
		return fmt.Errorf("scan.max_contexts must be at least 1, got %d", config.Scan.MaxContexts)
	}
	if config.Summarizer.ChunkChars < 1 {
		return fmt.Errorf("summarizer.chunk_chars must be at least 1, got %d", config.Summarizer.ChunkChars)
	}
	if config.Summarizer.Retries < 1 {
		return fmt.Errorf("summarizer.retries must be at least 1, got %d", config.Summarizer.Retries)
	}
	for field, kws := range config.Keywords {
		if len(kws) == 0 {
			return fmt.Errorf("keywords.%s must not be empty when overridden", field)
		}
	}
	return nil
}

// ApplyEnvOverrides overrides config fields from environment variables
// when set. Env takes precedence over the config file; flags remain
// highest precedence and are applied by the caller afterwards.
func ApplyEnvOverrides(config *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		config.Summarizer.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		config.Summarizer.BaseURL = v
	}
	if v := os.Getenv("ACTSCAN_MODEL"); v != "" {
		config.Summarizer.Model = v
	}
	if v := os.Getenv("ACTSCAN_OUTPUT_DIR"); v != "" {
		config.Defaults.OutputDir = v
	}
	if v := os.Getenv("ACTSCAN_CONTEXT_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			config.Scan.ContextChars = n
		}
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	if fileExists("actscan.yaml") {
		return "actscan.yaml"
	}
	if fileExists("actscan.yml") {
		return "actscan.yml"
	}
	if fileExists(".actscan.yaml") {
		return ".actscan.yaml"
	}

	standard := paths.GetConfigFile()
	if fileExists(standard) {
		return standard
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
