// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Defaults for ParseConfig.
const (
	DefaultBreakSize      = 10000
	DefaultDelimiter      = "|"
	DefaultMaxFieldLength = 1000
)

// OutputConfig holds settings for the delimited output files.
type OutputConfig struct {
	// OutputFile is the base path; files are written as <OutputFile><N>.csv.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// BreakSize is the number of data lines per file before rollover (default 10000).
	BreakSize int `json:"break_size" yaml:"break_size"`

	// Delimiter separates columns (default "|").
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// ParseConfig holds settings for a parse run.
type ParseConfig struct {
	OutputConfig `yaml:",inline"`

	// InputDir is the directory of .txt decision transcripts.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// MaxFieldLength caps each sanitized value, in characters (default 1000).
	MaxFieldLength int `json:"max_field_length" yaml:"max_field_length"`

	// DBPath, when set, names a SQLite case index that receives every record.
	DBPath string `json:"db,omitempty" yaml:"db,omitempty"`
}

// WithDefaults fills zero values with their defaults.
func (c ParseConfig) WithDefaults() ParseConfig {
	if c.BreakSize <= 0 {
		c.BreakSize = DefaultBreakSize
	}
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	if c.MaxFieldLength <= 0 {
		c.MaxFieldLength = DefaultMaxFieldLength
	}
	return c
}

// Validate reports the first configuration problem, if any.
func (c ParseConfig) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	if c.BreakSize <= 0 {
		return fmt.Errorf("break size must be positive, got %d", c.BreakSize)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if unicode.IsSpace(r) || r == '.' || r == ',' {
		return fmt.Errorf("delimiter %q is not allowed", c.Delimiter)
	}
	if c.MaxFieldLength < 4 {
		return fmt.Errorf("max field length must be at least 4, got %d", c.MaxFieldLength)
	}
	return nil
}

// CaseIndexConfig holds settings for querying and exporting the case index.
type CaseIndexConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db" yaml:"db"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
