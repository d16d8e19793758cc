// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize normalizes extracted values before they are stored in a
// record: the column delimiter is removed, long values are truncated with a
// visible ellipsis, line breaks collapse to spaces and surrounding
// whitespace and trailing commas are trimmed.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Ellipsis marks a truncated value.
const Ellipsis = "..."

// lineBreakRe matches any run of line terminators.
var lineBreakRe = regexp.MustCompile(`[\r\n]+`)

// Sanitizer cleans values for one delimiter and length limit.
type Sanitizer struct {
	delimiter string
	maxLength int
}

// New returns a Sanitizer. maxLength counts characters and includes the
// ellipsis; values below len(Ellipsis)+1 are raised to that minimum.
func New(delimiter string, maxLength int) *Sanitizer {
	if floor := utf8.RuneCountInString(Ellipsis) + 1; maxLength < floor {
		maxLength = floor
	}
	return &Sanitizer{delimiter: delimiter, maxLength: maxLength}
}

// Delimiter returns the column delimiter this Sanitizer strips.
func (s *Sanitizer) Delimiter() string {
	return s.delimiter
}

// Clean applies the full normalization. Clean is idempotent and its output
// never contains the delimiter.
func (s *Sanitizer) Clean(value string) string {
	return trimTrailingCommas(s.Line(value))
}

// Line applies every step of Clean except trailing-comma removal. Caption
// lines such as "SMITH," keep their punctuation.
func (s *Sanitizer) Line(value string) string {
	if s.delimiter != "" {
		value = strings.ReplaceAll(value, s.delimiter, "")
	}
	value = s.truncate(value)
	value = lineBreakRe.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

func (s *Sanitizer) truncate(value string) string {
	if utf8.RuneCountInString(value) <= s.maxLength {
		return value
	}
	keep := s.maxLength - utf8.RuneCountInString(Ellipsis)
	n := 0
	for i := range value {
		if n == keep {
			return value[:i] + Ellipsis
		}
		n++
	}
	return value
}

// trimTrailingCommas drops a trailing comma, repeating while trimming
// exposes another one.
func trimTrailingCommas(value string) string {
	for strings.HasSuffix(value, ",") {
		value = strings.TrimSpace(strings.TrimSuffix(value, ","))
	}
	return value
}
