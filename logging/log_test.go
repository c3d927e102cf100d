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

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger()
	log.SetOutput(&buf)
	log.SetLevel(Info)

	log.Debugf("hidden %d", 1)
	require.Empty(t, buf.String())

	log.Infof("shown %d", 2)
	require.Contains(t, buf.String(), "shown 2")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger()
	log.SetOutput(&buf)
	log.SetLevel(Info)

	log.With("line", 7).Infof("context")
	require.Contains(t, buf.String(), "line")

	buf.Reset()
	log.WithFields(Fields{"opcode": "MOVE"}).Infof("context")
	require.Contains(t, buf.String(), "MOVE")
}

func TestParseLevel(t *testing.T) {
	for s, expected := range map[string]Level{
		"panic": Panic, "fatal": Fatal, "error": Error,
		"warn": Warn, "warning": Warn, "info": Info, "debug": Debug,
	} {
		lvl, ok := ParseLevel(s)
		require.True(t, ok, s)
		require.Equal(t, expected, lvl, s)
	}
	_, ok := ParseLevel("chatty")
	require.False(t, ok)
}

func TestBaseIsShared(t *testing.T) {
	require.NotNil(t, Base())
	require.Equal(t, Base(), Base())
}
