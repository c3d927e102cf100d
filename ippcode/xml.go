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
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DefaultIndentWidth is the number of spaces per nesting level in the
// rendered document.
const DefaultIndentWidth = 4

type xmlArg struct {
	XMLName xml.Name
	Kind    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

type xmlInstruction struct {
	Order  int    `xml:"order,attr"`
	Opcode string `xml:"opcode,attr"`
	Args   []xmlArg
}

type xmlProgram struct {
	XMLName      xml.Name         `xml:"program"`
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

// WriteXML renders the program as a UTF-8 XML document with a
// declaration, one element per instruction and one argN grandchild per
// operand. Operand text is the already-validated source text, emitted
// as-is (modulo XML escaping).
func WriteXML(w io.Writer, prog *Program, indentWidth int) error {
	if indentWidth < 0 {
		return internalErrorf("invalid indent width %d", indentWidth)
	}
	doc := xmlProgram{Language: LanguageName}
	for _, inst := range prog.Instructions {
		xi := xmlInstruction{Order: inst.Order, Opcode: inst.Opcode}
		for i, arg := range inst.Args {
			xi.Args = append(xi.Args, xmlArg{
				XMLName: xml.Name{Local: fmt.Sprintf("arg%d", i+1)},
				Kind:    arg.Kind,
				Value:   arg.Value,
			})
		}
		doc.Instructions = append(doc.Instructions, xi)
	}

	out, err := xml.MarshalIndent(doc, "", strings.Repeat(" ", indentWidth))
	if err != nil {
		return internalErrorf("marshaling program: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return internalErrorf("writing document: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return internalErrorf("writing document: %w", err)
	}
	return nil
}
