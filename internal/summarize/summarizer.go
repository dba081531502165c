// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog/log"

	"actscan/internal/llm"
	"actscan/internal/sections"
)

// Options configures the map-reduce summarization run.
type Options struct {
	Model            string
	DocumentTitle    string
	ChunkChars       int
	MaxTokens        int
	CombineMaxTokens int
	Retries          int
	Backoff          time.Duration // base backoff, doubled per attempt
	Pacing           time.Duration // pause between chunk calls
}

// DefaultOptions returns the summarizer defaults.
func DefaultOptions() Options {
	return Options{
		Model:            "gpt-4o-mini",
		DocumentTitle:    "the Act",
		ChunkChars:       1200,
		MaxTokens:        400,
		CombineMaxTokens: 800,
		Retries:          3,
		Backoff:          time.Second,
		Pacing:           500 * time.Millisecond,
	}
}

// Summarizer produces a chunked map-reduce summary of a document through a
// chat model, checkpointing per-chunk results so an interrupted run can
// resume where it stopped. Calls are strictly sequential.
type Summarizer struct {
	Client llm.Client
	Opts   Options

	// Sleep is used for backoff and pacing; tests inject a no-op.
	Sleep func(time.Duration)
}

// New creates a summarizer with default sleeping behavior.
func New(client llm.Client, opts Options) *Summarizer {
	return &Summarizer{Client: client, Opts: opts, Sleep: time.Sleep}
}

// Summary is the final output artifact.
type Summary struct {
	SummaryText string `json:"summary_text"`
}

// Run summarizes the sections file at inPath and writes the final summary
// to outPath, maintaining a resumable checkpoint at checkpointPath.
func (s *Summarizer) Run(ctx context.Context, inPath, outPath, checkpointPath string) error {
	f, err := sections.Load(inPath)
	if err != nil {
		return err
	}

	texts := make([]string, 0, len(f.Sections))
	for _, sec := range f.Sections {
		texts = append(texts, sec.Text)
	}
	whole := strings.Join(texts, "\n\n")
	if strings.TrimSpace(whole) == "" {
		return errors.New("extracted sections appear empty")
	}

	chunks := Chunk(whole, s.Opts.ChunkChars)
	log.Info().Int("chunks", len(chunks)).Int("chunk_chars", s.Opts.ChunkChars).Msg("summarizing document")

	cp := LoadCheckpoint(checkpointPath)
	if len(cp.Intermediate) > 0 {
		log.Info().Int("completed", len(cp.Intermediate)).Msg("resuming from checkpoint")
	}

	for i := len(cp.Intermediate); i < len(chunks); i++ {
		log.Info().Int("chunk", i+1).Int("total", len(chunks)).Msg("summarizing chunk")
		answer, err := s.complete(ctx, s.chunkPrompt(i+1, len(chunks), chunks[i]), s.Opts.MaxTokens)
		if err != nil {
			// keep completed work so the next run resumes here
			if saveErr := cp.Save(checkpointPath); saveErr != nil {
				log.Warn().Err(saveErr).Msg("could not save checkpoint")
			}
			return fmt.Errorf("summarizing chunk %d/%d: %w", i+1, len(chunks), err)
		}
		cp.Intermediate = append(cp.Intermediate, answer)
		if err := cp.Save(checkpointPath); err != nil {
			return err
		}
		if s.Opts.Pacing > 0 {
			s.Sleep(s.Opts.Pacing)
		}
	}

	log.Info().Msg("combining intermediate bullets into final summary")
	final, err := s.complete(ctx, s.combinePrompt(cp.Intermediate), s.Opts.CombineMaxTokens)
	if err != nil {
		return fmt.Errorf("combining summaries: %w", err)
	}

	if err := writeSummary(outPath, Summary{SummaryText: final}); err != nil {
		return err
	}
	cp.Remove(checkpointPath)
	return nil
}

// complete calls the chat model with bounded retries and exponential
// backoff, surfacing the last error when every attempt fails.
func (s *Summarizer) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.Opts.Retries; attempt++ {
		resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: s.Opts.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens: maxTokens,
		})
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", errors.New("empty completion response")
			}
			return resp.Choices[0].Message.Content, nil
		}
		lastErr = err
		if attempt < s.Opts.Retries {
			wait := time.Duration(math.Pow(2, float64(attempt-1))) * s.Opts.Backoff
			log.Warn().Err(err).Int("attempt", attempt).Int("retries", s.Opts.Retries).
				Dur("backoff", wait).Msg("chat completion failed, backing off")
			s.Sleep(wait)
		}
	}
	return "", fmt.Errorf("chat completion failed after %d attempts: %w", s.Opts.Retries, lastErr)
}

func (s *Summarizer) chunkPrompt(n, total int, chunk string) string {
	return fmt.Sprintf(
		"You are summarising a chunk of %s. "+
			"Produce 3-5 concise bullets focusing on: PURPOSE, KEY DEFINITIONS, ELIGIBILITY, "+
			"OBLIGATIONS, and ENFORCEMENT. Label bullets. Output only bullets.\n\n"+
			"CHUNK %d/%d:\n\n%s",
		s.Opts.DocumentTitle, n, total, chunk)
}

func (s *Summarizer) combinePrompt(intermediate []string) string {
	return "Combine the intermediate bullets below into 5-10 final bullets covering: " +
		"Purpose, Key definitions, Eligibility, Obligations, Enforcement. Be concise and factual.\n\n" +
		strings.Join(intermediate, "\n\n")
}

// Chunk splits text into fixed-size character chunks, never splitting a
// multi-byte character.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 || text == "" {
		return nil
	}
	runes := []rune(text)
	var chunks []string
	for i := 0; i < len(runes); i += maxChars {
		end := min(len(runes), i+maxChars)
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

func writeSummary(path string, s Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}
