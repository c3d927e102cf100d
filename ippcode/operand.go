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
	"regexp"
	"strings"
)

// Operand kind tags, as they appear in the type attribute of the output
// document.
const (
	KindVar    = "var"
	KindInt    = "int"
	KindBool   = "bool"
	KindString = "string"
	KindNil    = "nil"
	KindLabel  = "label"
	KindType   = "type"
)

// Operand is one validated instruction argument. Value holds the raw
// source text (bool constants lowercased, nothing else re-decoded).
type Operand struct {
	Kind  string
	Value string
}

// Identifiers start with a letter or one of the extra symbols and
// continue with letters, digits, or those symbols. Variables add a
// mandatory frame prefix, constants a type prefix.
const identText = `[a-zA-Z_$&%*!?-][a-zA-Z0-9_$&%*!?-]*`

var (
	labelPattern  = regexp.MustCompile(`^` + identText + `$`)
	varPattern    = regexp.MustCompile(`^(GF|LF|TF)@` + identText + `$`)
	constPattern  = regexp.MustCompile(`^(int|bool|string|nil)@(.*)$`)
	intPattern    = regexp.MustCompile(`^([-+]?[0-9]+|-?0x[0-9a-fA-F]+|-?0o?[0-7]+)$`)
	opcodePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// argCheck validates one operand token and returns its tagged record.
type argCheck func(arg string) (Operand, error)

// checkVar matches FRAME@IDENT.
func checkVar(arg string) (Operand, error) {
	if !varPattern.MatchString(arg) {
		return Operand{}, syntaxErrorf("invalid variable %q", arg)
	}
	return Operand{Kind: KindVar, Value: arg}, nil
}

// checkSymb matches a variable or a typed constant.
func checkSymb(arg string) (Operand, error) {
	if varPattern.MatchString(arg) {
		return Operand{Kind: KindVar, Value: arg}, nil
	}
	groups := constPattern.FindStringSubmatch(arg)
	if groups == nil {
		return Operand{}, syntaxErrorf("invalid symbol %q", arg)
	}
	kind, value := groups[1], groups[2]
	switch kind {
	case KindNil:
		if value == "nil" {
			return Operand{Kind: kind, Value: value}, nil
		}
	case KindInt:
		if intPattern.MatchString(value) {
			return Operand{Kind: kind, Value: value}, nil
		}
	case KindBool:
		switch strings.ToLower(value) {
		case "true", "false":
			return Operand{Kind: kind, Value: strings.ToLower(value)}, nil
		}
	case KindString:
		if err := checkStringEscapes(value); err != nil {
			return Operand{}, err
		}
		return Operand{Kind: kind, Value: value}, nil
	}
	return Operand{}, syntaxErrorf("invalid %s constant %q", kind, value)
}

// checkStringEscapes verifies that every backslash in a string literal
// begins a 3-digit decimal escape.
func checkStringEscapes(value string) error {
	for i := 0; i < len(value); i++ {
		if value[i] != '\\' {
			continue
		}
		if i+3 >= len(value) || !allDigits(value[i+1:i+4]) {
			return syntaxErrorf("invalid escape sequence in string %q", value)
		}
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// checkLabel matches a bare identifier.
func checkLabel(arg string) (Operand, error) {
	if !labelPattern.MatchString(arg) {
		return Operand{}, syntaxErrorf("invalid label %q", arg)
	}
	return Operand{Kind: KindLabel, Value: arg}, nil
}

// checkType matches exactly one of the type literals. nil is a valid
// constant type but not a READ target.
func checkType(arg string) (Operand, error) {
	switch arg {
	case "int", "string", "bool":
		return Operand{Kind: KindType, Value: arg}, nil
	}
	return Operand{}, syntaxErrorf("invalid type %q", arg)
}
