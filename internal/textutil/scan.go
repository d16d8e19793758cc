// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil holds the offset-scanning helpers the field extractors
// are built from. Every function takes explicit string and byte-offset
// arguments and never panics on out-of-range offsets.
package textutil

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a marker does not occur where it is required.
var ErrNotFound = errors.New("marker not found")

// lineBreaks replaces every line terminator sequence with a single space.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Flatten returns text with each line terminator sequence replaced by one space.
func Flatten(text string) string {
	return lineBreaks.Replace(text)
}

func clamp(text string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(text) {
		return len(text)
	}
	return i
}

// LineStart returns the offset of the first byte of the line containing i.
func LineStart(text string, i int) int {
	i = clamp(text, i)
	return strings.LastIndexByte(text[:i], '\n') + 1
}

// LineEnd returns the offset of the line terminator ending the line that
// contains i, or len(text) on the last line. A trailing '\r' is excluded.
func LineEnd(text string, i int) int {
	i = clamp(text, i)
	end := len(text)
	if nl := strings.IndexByte(text[i:], '\n'); nl >= 0 {
		end = i + nl
	}
	if end > i && text[end-1] == '\r' {
		end--
	}
	return end
}

// PreviousLine returns the full line immediately before the line containing
// i. It fails with ErrNotFound when i is on the first line.
func PreviousLine(text string, i int) (string, error) {
	start := LineStart(text, i)
	if start == 0 {
		return "", ErrNotFound
	}
	prevEnd := start - 1
	prevStart := strings.LastIndexByte(text[:prevEnd], '\n') + 1
	return strings.TrimSuffix(text[prevStart:prevEnd], "\r"), nil
}

// BackTo returns the substring strictly between the nearest occurrence of
// marker that ends at or before from, and from. It fails with ErrNotFound
// if no such marker exists before from.
func BackTo(text, marker string, from int) (string, error) {
	from = clamp(text, from)
	idx := strings.LastIndex(text[:from], marker)
	if idx < 0 {
		return "", ErrNotFound
	}
	return text[idx+len(marker) : from], nil
}

// ForwardTo returns the substring from from up to, not including, the next
// occurrence of marker. It fails with ErrNotFound if marker does not occur
// at or after from.
func ForwardTo(text, marker string, from int) (string, error) {
	from = clamp(text, from)
	idx := strings.Index(text[from:], marker)
	if idx < 0 {
		return "", ErrNotFound
	}
	return text[from : from+idx], nil
}

// LineUpTo returns the text from the start of the line containing i up to i.
func LineUpTo(text string, i int) string {
	i = clamp(text, i)
	return text[LineStart(text, i):i]
}

// IndexFold returns the byte offset of the first case-insensitive
// occurrence of substr in text, or -1. Only ASCII letters are folded, so
// offsets are valid for the original text.
func IndexFold(text, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(text); i++ {
		if equalFoldASCII(text[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
