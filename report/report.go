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

// Package report writes statistics files from the ordered directive
// groups given on the command line. Each --stats=FILE opens a group;
// the directives that follow, up to the next group, emit one line each
// into that file.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ipplang/ippcode24/ippcode"
)

const groupPrefix = "--stats="

// Run processes the whole directive sequence against one frozen Stats
// snapshot. Groups are written incrementally, in order; the first bad
// directive aborts with everything before it already flushed. Reusing a
// destination is detected before the second occurrence is opened, so
// the first group's output is left intact.
func Run(args []string, stats *ippcode.Stats) error {
	used := make(map[string]bool)
	for len(args) > 0 {
		if !strings.HasPrefix(args[0], groupPrefix) {
			return ippcode.ParamErrorf("expected %sFILE, got %q", groupPrefix, args[0])
		}
		path := strings.TrimPrefix(args[0], groupPrefix)
		if used[path] {
			return ippcode.StatsFileErrorf("stats destination %q used twice", path)
		}
		used[path] = true
		args = args[1:]

		group := args
		for len(args) > 0 && !strings.HasPrefix(args[0], groupPrefix) {
			args = args[1:]
		}
		group = group[:len(group)-len(args)]

		if err := writeGroup(path, group, stats); err != nil {
			return err
		}
	}
	return nil
}

func writeGroup(path string, directives []string, stats *ippcode.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return ippcode.InternalErrorf("opening stats destination: %w", err)
	}
	for _, directive := range directives {
		if err := emit(f, directive, stats); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// emit writes the output of a single directive. The leading dashes are
// optional, matching the reference behavior.
func emit(w io.Writer, directive string, stats *ippcode.Stats) error {
	name := strings.TrimPrefix(directive, "--")
	switch {
	case strings.HasPrefix(name, "print="):
		fmt.Fprintln(w, strings.TrimPrefix(name, "print="))
	case name == "eol":
		fmt.Fprintln(w)
	case name == "frequent":
		// No output at all for an empty program.
		if most := stats.MostFrequent(); most != "" {
			fmt.Fprintln(w, most)
		}
	default:
		n, ok := stats.Counter(name)
		if !ok {
			return ippcode.ParamErrorf("unknown stats directive %q", directive)
		}
		fmt.Fprintln(w, n)
	}
	return nil
}
