// Copyright (C) 2024 the parse24 authors.
// This file is part of parse24
//
// parse24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// parse24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with parse24.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := GetDefaultLocal()
	require.Equal(t, 4, cfg.IndentWidth)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadWithoutRoot(t *testing.T) {
	cfg, err := LoadConfigFromDisk("")
	require.NoError(t, err)
	require.Equal(t, GetDefaultLocal(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadConfigFromDisk(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, GetDefaultLocal(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"IndentWidth": 2}`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.IndentWidth)
	// Unset keys keep their defaults.
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsNegativeIndentWidth(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"IndentWidth": -1}`), 0644)
	require.NoError(t, err)

	_, err = LoadConfigFromDisk(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "IndentWidth")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"IndentWidth": `), 0644)
	require.NoError(t, err)

	_, err = LoadConfigFromDisk(dir)
	require.Error(t, err)
}
