// DolphinXR
// Copyright (c) 2026 The DolphinXR Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of DolphinXR.
//
// DolphinXR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DolphinXR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DolphinXR.  If not, see <http://www.gnu.org/licenses/>.

package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	handoffExt = ".handoff.json"

	// minReliableYear is the earliest year a device clock is trusted for
	// age checks. Headsets that boot without network time report 1970.
	minReliableYear = 2026
)

var ErrInvalidHandoff = errors.New("invalid handoff envelope")

// Envelope is the on-disk form of an Intent passed between processes.
type Envelope struct {
	CreatedAt time.Time `json:"created_at"`
	Extras    Extras    `json:"extras"`
	ID        string    `json:"id"`
	Package   string    `json:"package"`
	Activity  string    `json:"activity,omitempty"`
	Action    string    `json:"action,omitempty"`
	Data      string    `json:"data,omitempty"`
	Flags     Flags     `json:"flags"`
}

// NewEnvelope wraps an intent with a fresh id and timestamp.
func NewEnvelope(clock clockwork.Clock, in *Intent) Envelope {
	env := Envelope{
		ID:        uuid.New().String(),
		CreatedAt: clock.Now().UTC(),
		Package:   in.Package,
		Activity:  in.Activity,
		Action:    in.Action,
		Flags:     in.Flags,
		Extras:    in.Extras,
	}
	if in.Data != nil {
		env.Data = in.Data.String()
	}
	return env
}

// Intent converts the envelope back into a launch request.
func (e *Envelope) Intent() (*Intent, error) {
	in := &Intent{
		Package:  e.Package,
		Activity: e.Activity,
		Action:   e.Action,
		Flags:    e.Flags,
		Extras:   e.Extras,
	}
	if e.Data != "" {
		u, err := url.Parse(e.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: bad data uri: %w", ErrInvalidHandoff, err)
		}
		in.Data = u
	}
	return in, nil
}

// IsHandoffFile reports whether name is a complete envelope file name.
func IsHandoffFile(name string) bool {
	return strings.HasSuffix(name, handoffExt)
}

// WriteHandoff stores the intent as a new envelope file in dir and returns
// its path. The file is written to a temp name first and renamed so a
// receiver never observes a partial envelope.
func WriteHandoff(fs afero.Fs, dir string, clock clockwork.Clock, in *Intent) (string, error) {
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create handoff directory: %w", err)
	}

	env := NewEnvelope(clock, in)
	data, err := json.Marshal(&env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal handoff envelope: %w", err)
	}

	path := filepath.Join(dir, env.ID+handoffExt)
	tmpPath := path + ".tmp"
	if err := afero.WriteFile(fs, tmpPath, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write handoff envelope: %w", err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return "", fmt.Errorf("failed to move handoff envelope into place: %w", err)
	}

	log.Debug().
		Str("id", env.ID).
		Str("path", path).
		Int("extras", len(in.Extras.Keys())).
		Msg("wrote handoff envelope")
	return path, nil
}

// ReadHandoff loads an envelope and removes it from disk so the same
// request is never consumed twice.
func ReadHandoff(fs afero.Fs, path string) (*Intent, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read handoff envelope: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHandoff, err)
	}
	if env.ID == "" || env.Package == "" {
		return nil, fmt.Errorf("%w: missing id or package", ErrInvalidHandoff)
	}

	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msgf("failed to remove consumed handoff: %s", path)
	}

	return env.Intent()
}

// PruneHandoffs removes envelopes in dir older than maxAge. Returns the
// number of files removed. A missing dir is not an error.
func PruneHandoffs(fs afero.Fs, dir string, clock clockwork.Clock, maxAge time.Duration) (int, error) {
	entries, err := afero.ReadDir(fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to read handoff directory: %w", err)
	}

	now := clock.Now()
	if now.Year() < minReliableYear {
		log.Debug().Time("now", now).Msg("clock not set, skipping handoff pruning")
		return 0, nil
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsHandoffFile(entry.Name()) {
			continue
		}
		if entry.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := fs.Remove(path); err != nil {
			log.Warn().Err(err).Msgf("failed to prune handoff: %s", path)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info().Msgf("pruned %d stale handoff envelopes", removed)
	}
	return removed, nil
}
