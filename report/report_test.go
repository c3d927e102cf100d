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

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipplang/ippcode24/ippcode"
)

func sampleStats(t *testing.T) *ippcode.Stats {
	t.Helper()
	_, stats, err := ippcode.Parse(strings.NewReader(`.IPPcode24
MOVE GF@a int@1  # one comment
MOVE GF@b int@2
JUMP end
LABEL end
`))
	require.NoError(t, err)
	return stats
}

func TestRunWritesGroup(t *testing.T) {
	stats := sampleStats(t)
	path := filepath.Join(t.TempDir(), "stats.txt")

	err := Run([]string{
		"--stats=" + path,
		"--loc", "--comments", "--print=done", "--eol", "--frequent", "--fwjumps",
	}, stats)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "4\n1\ndone\n\nMOVE\n1\n", string(content))
}

func TestRunMultipleGroups(t *testing.T) {
	stats := sampleStats(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")

	err := Run([]string{
		"--stats=" + first, "--jumps",
		"--stats=" + second, "--labels", "--badjumps",
	}, stats)
	require.NoError(t, err)

	content, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Equal(t, "1\n", string(content))

	content, err = os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, "1\n0\n", string(content))
}

func TestRunDuplicateDestination(t *testing.T) {
	stats := sampleStats(t)
	path := filepath.Join(t.TempDir(), "stats.txt")

	err := Run([]string{
		"--stats=" + path, "--loc",
		"--stats=" + path, "--comments",
	}, stats)
	require.Error(t, err)
	require.Equal(t, ippcode.ExitStatsFile, ippcode.ExitCode(err))

	// The first group's output survives; the reuse was caught before
	// the destination was reopened.
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "4\n", string(content))
}

func TestRunUnknownDirective(t *testing.T) {
	stats := sampleStats(t)
	path := filepath.Join(t.TempDir(), "stats.txt")

	err := Run([]string{"--stats=" + path, "--bogus"}, stats)
	require.Error(t, err)
	require.Equal(t, ippcode.ExitParam, ippcode.ExitCode(err))
}

func TestRunDirectiveOutsideGroup(t *testing.T) {
	err := Run([]string{"--loc"}, sampleStats(t))
	require.Error(t, err)
	require.Equal(t, ippcode.ExitParam, ippcode.ExitCode(err))
}

func TestRunNoDirectives(t *testing.T) {
	require.NoError(t, Run(nil, sampleStats(t)))
}

func TestFrequentOnEmptyProgram(t *testing.T) {
	_, stats, err := ippcode.Parse(strings.NewReader(".IPPcode24\n"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stats.txt")
	require.NoError(t, Run([]string{"--stats=" + path, "--frequent"}, stats))

	// No instructions, no line at all.
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "", string(content))
}
