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
	"bufio"
	"io"
	"strings"
)

// maxLineLen lifts the scanner's default 64KB line ceiling. Source
// lines are normally short, but a string constant can legitimately make
// a single line much longer than that.
const maxLineLen = 64 << 20

type parser struct {
	scanner *bufio.Scanner
	stats   *Stats
	prog    *Program
	line    int
}

// Parse consumes the whole source stream and returns the validated
// program together with its statistics. It fails fast: the first
// malformed line aborts the pass, wrapped with its line number.
func Parse(fin io.Reader) (*Program, *Stats, error) {
	p := &parser{
		scanner: bufio.NewScanner(fin),
		stats:   NewStats(),
		prog:    &Program{},
	}
	p.scanner.Buffer(nil, maxLineLen)
	if err := p.checkHeader(); err != nil {
		return nil, nil, err
	}
	for {
		line, ok := p.nextLine()
		if !ok {
			break
		}
		inst, err := parseInstruction(line, p.stats)
		if err != nil {
			return nil, nil, lineErr(p.line, err)
		}
		p.prog.append(inst)
		p.stats.Loc++
	}
	if err := p.scanner.Err(); err != nil {
		return nil, nil, internalErrorf("reading source: %w", err)
	}
	p.stats.finalize()
	return p.prog, p.stats, nil
}

// nextLine returns the next logically significant line: comments are
// stripped (and counted), surrounding spaces and tabs trimmed, and
// anything left empty skipped.
func (p *parser) nextLine() (string, bool) {
	for p.scanner.Scan() {
		p.line++
		line := p.scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			p.stats.Comments++
			line = line[:idx]
		}
		line = strings.Trim(line, " \t")
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// checkHeader requires the first significant line to be the language
// header, case-insensitively. A stream with no significant lines at all
// is a header error too.
func (p *parser) checkHeader() error {
	line, ok := p.nextLine()
	if !ok {
		return headerErrorf("source contains no %q header", "."+LanguageName)
	}
	if !strings.EqualFold(line, "."+LanguageName) {
		return lineErr(p.line, headerErrorf("expected %q header, found %q", "."+LanguageName, line))
	}
	return nil
}
