// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package summarize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Checkpoint is the append-only record of per-chunk summaries completed so
// far. Its length is the resume point: a new run continues at chunk
// len(Intermediate).
type Checkpoint struct {
	Intermediate []string `json:"intermediate"`
}

// LoadCheckpoint reads a checkpoint from path. A missing or unreadable
// checkpoint means starting over, never an error.
func LoadCheckpoint(path string) *Checkpoint {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Checkpoint{}
	}
	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("ignoring unreadable checkpoint")
		return &Checkpoint{}
	}
	return &cp
}

// Save persists the checkpoint, creating parent directories on a
// best-effort basis.
func (cp *Checkpoint) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating checkpoint directory: %w", err)
	}
	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing checkpoint %s: %w", path, err)
	}
	return nil
}

// Remove deletes the checkpoint file, best-effort.
func (cp *Checkpoint) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", path).Msg("could not remove checkpoint")
	}
}
