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

package ippcode

import (
	"sort"
	"strings"
)

// Stats accumulates program statistics over one parse pass. It also owns
// the label bookkeeping: the set of labels defined so far and the
// multiset of jump targets seen before their definition. After the pass
// finishes the accumulator is frozen and read-only.
//
// Note that RETURN increments Jumps without touching the label tables,
// so FwJumps+BackJumps+BadJumps may be less than Jumps.
type Stats struct {
	Loc       int
	Comments  int
	Labels    int
	Jumps     int
	FwJumps   int
	BackJumps int
	BadJumps  int
	Opcodes   map[string]int

	defined map[string]bool
	pending map[string]int
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{
		Opcodes: make(map[string]int),
		defined: make(map[string]bool),
		pending: make(map[string]int),
	}
}

// noteJump counts a jump to label: backward if the target is already
// defined, otherwise pending until a later definition (or end of input,
// which makes it bad).
func (s *Stats) noteJump(label string) {
	s.Jumps++
	if s.defined[label] {
		s.BackJumps++
	} else {
		s.pending[label]++
	}
}

// noteLabel records a label definition. Redefinitions are not
// re-counted and do not re-trigger resolution.
func (s *Stats) noteLabel(label string) {
	if s.defined[label] {
		return
	}
	s.defined[label] = true
	s.Labels++
	if n := s.pending[label]; n > 0 {
		s.FwJumps += n
		delete(s.pending, label)
	}
}

func (s *Stats) countOpcode(name string) {
	s.Opcodes[name]++
}

// finalize settles the pending multiset: whatever is still unresolved at
// end of input is a bad jump.
func (s *Stats) finalize() {
	s.BadJumps = 0
	for _, n := range s.pending {
		s.BadJumps += n
	}
}

// Counter returns the named counter, or false for an unknown name. The
// names are the ones accepted by the stats directives.
func (s *Stats) Counter(name string) (int, bool) {
	switch name {
	case "loc":
		return s.Loc, true
	case "comments":
		return s.Comments, true
	case "labels":
		return s.Labels, true
	case "jumps":
		return s.Jumps, true
	case "fwjumps":
		return s.FwJumps, true
	case "backjumps":
		return s.BackJumps, true
	case "badjumps":
		return s.BadJumps, true
	}
	return 0, false
}

// MostFrequent returns the opcodes with the highest occurrence count,
// sorted ascending and comma-joined. Empty when nothing was parsed.
func (s *Stats) MostFrequent() string {
	if len(s.Opcodes) == 0 {
		return ""
	}
	max := 0
	for _, n := range s.Opcodes {
		if n > max {
			max = n
		}
	}
	names := make([]string, 0, len(s.Opcodes))
	for name, n := range s.Opcodes {
		if n == max {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
