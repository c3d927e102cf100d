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

// LanguageName is the language identifier carried by the source header
// (prefixed with a dot) and by the root element of the output document.
const LanguageName = "IPPcode24"

// flowEffect describes what a successfully validated instruction does to
// the jump/label bookkeeping. Only the first operand is ever involved.
type flowEffect int

const (
	effectNone flowEffect = iota
	// effectJump counts a jump and classifies it against the labels
	// defined so far (JUMP, JUMPIFEQ, JUMPIFNEQ).
	effectJump
	// effectLabel defines the target label and resolves any jumps that
	// were waiting for it.
	effectLabel
	// effectReturn counts a jump but has no label to classify.
	effectReturn
)

// OpSpec defines one opcode of the language: its canonical name, the
// grammar checker for each operand position (arity is the length of
// Args), and its effect on jump/label statistics.
type OpSpec struct {
	Name   string
	Args   []argCheck
	Effect flowEffect
}

// OpSpecs is the table of instructions that can be parsed. Opcode lookup
// is case-insensitive on the uppercased source token; anything absent
// from this table is an opcode error.
var OpSpecs = []OpSpec{
	{"MOVE", []argCheck{checkVar, checkSymb}, effectNone},
	{"CREATEFRAME", nil, effectNone},
	{"PUSHFRAME", nil, effectNone},
	{"POPFRAME", nil, effectNone},
	{"DEFVAR", []argCheck{checkVar}, effectNone},
	{"CALL", []argCheck{checkLabel}, effectNone},
	{"RETURN", nil, effectReturn},

	{"PUSHS", []argCheck{checkSymb}, effectNone},
	{"POPS", []argCheck{checkVar}, effectNone},

	{"ADD", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"SUB", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"MUL", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"IDIV", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"LT", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"GT", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"EQ", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"AND", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"OR", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"NOT", []argCheck{checkVar, checkSymb}, effectNone},
	{"INT2CHAR", []argCheck{checkVar, checkSymb}, effectNone},
	{"STRI2INT", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},

	{"READ", []argCheck{checkVar, checkType}, effectNone},
	{"WRITE", []argCheck{checkSymb}, effectNone},

	{"CONCAT", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"STRLEN", []argCheck{checkVar, checkSymb}, effectNone},
	{"GETCHAR", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},
	{"SETCHAR", []argCheck{checkVar, checkSymb, checkSymb}, effectNone},

	{"TYPE", []argCheck{checkVar, checkSymb}, effectNone},

	{"LABEL", []argCheck{checkLabel}, effectLabel},
	{"JUMP", []argCheck{checkLabel}, effectJump},
	{"JUMPIFEQ", []argCheck{checkLabel, checkSymb, checkSymb}, effectJump},
	{"JUMPIFNEQ", []argCheck{checkLabel, checkSymb, checkSymb}, effectJump},
	{"EXIT", []argCheck{checkSymb}, effectNone},

	{"DPRINT", []argCheck{checkSymb}, effectNone},
	{"BREAK", nil, effectNone},
}

var opsByName map[string]OpSpec

func init() {
	opsByName = make(map[string]OpSpec, len(OpSpecs))
	for _, spec := range OpSpecs {
		if _, ok := opsByName[spec.Name]; ok {
			panic("duplicate opcode " + spec.Name)
		}
		opsByName[spec.Name] = spec
	}
}
