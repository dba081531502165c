// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"actscan/internal/config"
	"actscan/internal/core"
	"actscan/internal/extract"
	"actscan/internal/llm"
	"actscan/internal/paths"
	"actscan/internal/report"
	"actscan/internal/summarize"
	"actscan/internal/version"
)

// cliFlags holds command line flag values
type cliFlags struct {
	mode        string
	file        string
	sections    string
	outputDir   string
	configFile  string
	noColor     bool
	verbose     bool
	debug       bool
	showVersion bool
}

func main() {
	// Best-effort .env load so OPENAI_API_KEY can live next to the repo
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var flags cliFlags
	flag.StringVar(&flags.mode, "mode", "check", "Stage to run: extract, check, summarize, or all")
	flag.StringVar(&flags.file, "file", "", "Path to the source PDF (extract and all modes)")
	flag.StringVar(&flags.sections, "sections", "", "Path to the sections JSON file (defaults to <output-dir>/extracted_sections.json)")
	flag.StringVar(&flags.outputDir, "output-dir", "", "Directory for run artifacts")
	flag.StringVar(&flags.configFile, "config", "", "Path to config file")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.Parse()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := loadConfiguration(flags.configFile)
	config.ApplyEnvOverrides(cfg)

	// Flags take precedence over env and config file
	if flags.outputDir != "" {
		cfg.Defaults.OutputDir = flags.outputDir
	}
	if flags.verbose {
		cfg.Defaults.Verbose = true
	}
	if flags.debug {
		cfg.Defaults.Debug = true
	}
	if flags.noColor {
		cfg.Defaults.NoColor = true
	}

	if cfg.Defaults.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if cfg.Defaults.Verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	noColor := cfg.Defaults.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	outputDir := cfg.Defaults.OutputDir
	sectionsPath := flags.sections
	if sectionsPath == "" {
		sectionsPath = paths.SectionsFile(outputDir)
	}

	switch flags.mode {
	case "extract":
		runExtract(flags.file, sectionsPath)
	case "check":
		runCheck(cfg, sectionsPath, outputDir, noColor)
	case "summarize":
		runSummarize(cfg, sectionsPath, outputDir)
	case "all":
		runExtract(flags.file, sectionsPath)
		runCheck(cfg, sectionsPath, outputDir, noColor)
		runSummarize(cfg, sectionsPath, outputDir)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (expected extract, check, summarize, or all)\n", flags.mode)
		os.Exit(1)
	}
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

func runExtract(pdfPath, sectionsPath string) {
	if pdfPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -file is required for extract mode\n")
		os.Exit(1)
	}
	result, err := extract.Run(pdfPath, sectionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s, sections: %d\n", sectionsPath, len(result.Sections))
}

func runCheck(cfg *config.Config, sectionsPath, outputDir string, noColor bool) {
	result, err := core.RunCheck(core.CheckConfig{
		SectionsPath: sectionsPath,
		ReportPath:   paths.ReportFile(outputDir),
		DebugPath:    paths.DebugFile(outputDir),
		Config:       cfg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	report.PrintSummary(os.Stdout, result.Report, noColor)
}

func runSummarize(cfg *config.Config, sectionsPath, outputDir string) {
	if cfg.Summarizer.APIKey == "" {
		fmt.Fprintf(os.Stderr, "Error: OPENAI_API_KEY not set in environment\n")
		os.Exit(1)
	}

	opts := summarize.DefaultOptions()
	opts.Model = cfg.Summarizer.Model
	opts.DocumentTitle = cfg.Summarizer.DocumentTitle
	opts.ChunkChars = cfg.Summarizer.ChunkChars
	opts.MaxTokens = cfg.Summarizer.MaxTokens
	opts.CombineMaxTokens = cfg.Summarizer.CombineMaxTokens
	opts.Retries = cfg.Summarizer.Retries

	client := llm.NewOpenAIClient(cfg.Summarizer.APIKey, cfg.Summarizer.BaseURL)
	s := summarize.New(client, opts)

	err := s.Run(context.Background(), sectionsPath,
		paths.SummaryFile(outputDir), paths.SummaryCheckpointFile(outputDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Summary written to %s\n", paths.SummaryFile(outputDir))
}
