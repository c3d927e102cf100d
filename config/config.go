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

// Package config holds the per-installation settings of the parser.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ConfigFilename is the name of the file where we store per-installation
// settings, looked up in the directory named by the PARSE24_DATA
// environment variable.
const ConfigFilename = "parse24.json"

// Local holds the configurable settings of one parser installation.
type Local struct {
	// IndentWidth is the number of spaces per nesting level in the
	// output document.
	IndentWidth int

	// LogLevel selects the stderr diagnostic verbosity: panic, fatal,
	// error, warn, info, or debug.
	LogLevel string
}

var defaultLocal = Local{
	IndentWidth: 4,
	LogLevel:    "warn",
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromDisk returns the default configuration merged with the
// config file found in root, if any. An empty root or a missing file
// yields the plain defaults.
func LoadConfigFromDisk(root string) (Local, error) {
	if root == "" {
		return defaultLocal, nil
	}
	c, err := mergeConfigFromFile(filepath.Join(root, ConfigFilename), defaultLocal)
	if os.IsNotExist(err) {
		return defaultLocal, nil
	}
	if err != nil {
		return c, err
	}
	if c.IndentWidth < 0 {
		return c, fmt.Errorf("IndentWidth must not be negative, got %d", c.IndentWidth)
	}
	return c, nil
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = loadConfig(f, &source)
	return source, err
}

func loadConfig(reader io.Reader, config *Local) error {
	dec := json.NewDecoder(reader)
	return dec.Decode(config)
}
