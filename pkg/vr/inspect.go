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

package vr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// ConfigSummary describes one file in the Config directory.
type ConfigSummary struct {
	Name     string   `yaml:"name"`
	Error    string   `yaml:"error,omitempty"`
	Sections []string `yaml:"sections,omitempty"`
	Size     int64    `yaml:"size"`
}

// InspectConfig lists the files a launch would transfer, with the section
// names of any that parse as ini.
func (b *Bridge) InspectConfig() ([]ConfigSummary, error) {
	root := b.ConfigDir()
	entries, err := afero.ReadDir(b.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list config directory: %w", err)
	}

	summaries := make([]ConfigSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		s := ConfigSummary{Name: entry.Name(), Size: entry.Size()}
		if strings.EqualFold(filepath.Ext(s.Name), ".ini") {
			sections, err := b.iniSections(filepath.Join(root, s.Name))
			if err != nil {
				log.Warn().Err(err).Msgf("failed to parse config file: %s", s.Name)
				s.Error = err.Error()
			}
			s.Sections = sections
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (b *Bridge) iniSections(path string) ([]string, error) {
	data, err := afero.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:        true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var sections []string
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		sections = append(sections, sec.Name())
	}
	return sections, nil
}
