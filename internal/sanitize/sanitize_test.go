// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	s := New("|", 20)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Supreme Court", "Supreme Court"},
		{"delimiter removed", "a|b||c", "abc"},
		{"line breaks collapsed", "Smith,\r\nJones\n\nBrown", "Smith, Jones Brown"},
		{"whitespace trimmed", "  Erie County \n", "Erie County"},
		{"trailing comma dropped", "John Doe,", "John Doe"},
		{"comma then space", "John Doe , ", "John Doe"},
		{"truncated", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopq..."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.in))
		})
	}
}

func TestCleanTruncatesOnRuneBoundary(t *testing.T) {
	s := New("|", 6)
	got := s.Clean("§§§§§§§§§§")
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "§§§...", got)
}

func TestLineKeepsTrailingComma(t *testing.T) {
	s := New("|", 100)
	assert.Equal(t, "SMITH,", s.Line(" SMITH,\r\n"))
	assert.Equal(t, "SMITH", s.Clean(" SMITH,\r\n"))
}

func TestCleanIdempotent(t *testing.T) {
	s := New("|", 12)
	inputs := []string{
		"",
		"plain",
		"a|b|c|d|e|f|g|h|i|j|k|l|m|n",
		"trailing,,, ,",
		"line\nbreaks\r\nand   spaces  ",
		strings.Repeat("long value, ", 10),
		"short ,\n,",
		"||||",
		"exactly12chr",
		"   padded value that is long   ",
	}
	for _, in := range inputs {
		once := s.Clean(in)
		assert.Equal(t, once, s.Clean(once), "input %q", in)
		assert.NotContains(t, once, "|", "input %q", in)
		assert.LessOrEqual(t, utf8.RuneCountInString(once), 12, "input %q", in)

		line := s.Line(in)
		assert.Equal(t, line, s.Line(line), "input %q", in)
	}
}

func TestNewRaisesTinyLimit(t *testing.T) {
	s := New("|", 1)
	assert.Equal(t, "a...", s.Clean("abcdefgh"))
	assert.Equal(t, "|", s.Delimiter())
}
