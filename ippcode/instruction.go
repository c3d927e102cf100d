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
	"strings"
)

// Instruction is one validated source line: canonical uppercase opcode,
// operands in source order, and a 1-based order number assigned when it
// is appended to a Program.
type Instruction struct {
	Opcode string
	Args   []Operand
	Order  int
}

// Program is the ordered instruction list produced by one parse pass.
// Append-only; instructions are immutable once appended.
type Program struct {
	Instructions []Instruction
}

func (p *Program) append(inst Instruction) {
	inst.Order = len(p.Instructions) + 1
	p.Instructions = append(p.Instructions, inst)
}

// parseInstruction validates one logical source line against the opcode
// table, updating stats on success. Tabs are normalized to spaces and
// the line is split on single spaces, so runs of separators produce
// empty argument tokens that the grammar rejects rather than silently
// dropping them.
func parseInstruction(line string, stats *Stats) (Instruction, error) {
	fields := strings.Split(strings.ReplaceAll(line, "\t", " "), " ")
	opstring, args := fields[0], fields[1:]

	if !opcodePattern.MatchString(opstring) {
		return Instruction{}, syntaxErrorf("malformed opcode token %q", opstring)
	}
	name := strings.ToUpper(opstring)
	spec, ok := opsByName[name]
	if !ok {
		return Instruction{}, opcodeErrorf("unknown opcode %s", name)
	}
	if len(args) != len(spec.Args) {
		return Instruction{}, syntaxErrorf("%s expects %d operands, got %d",
			name, len(spec.Args), len(args))
	}

	operands := make([]Operand, len(args))
	for i, check := range spec.Args {
		op, err := check(args[i])
		if err != nil {
			return Instruction{}, err
		}
		operands[i] = op
	}

	// Bookkeeping happens only after the whole line validated: a jump
	// with a malformed operand must not count.
	switch spec.Effect {
	case effectJump:
		stats.noteJump(operands[0].Value)
	case effectLabel:
		stats.noteLabel(operands[0].Value)
	case effectReturn:
		stats.Jumps++
	}
	stats.countOpcode(name)

	return Instruction{Opcode: name, Args: operands}, nil
}
