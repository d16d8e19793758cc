// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes delimited records to a series of numbered CSV
// files, rolling over to the next file once the current one holds the
// configured number of data lines.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/nyappeal/pkg/types"
)

// Ext is the suffix of every output file.
const Ext = ".csv"

// Writer appends records to <base><N>.csv. Each write opens the current
// file in append mode, writes one line and closes it again, so a run
// interrupted between records leaves complete files behind.
type Writer struct {
	base      string
	delimiter string
	breakSize int
	header    string

	fileIndex int
	lineCount int
	started   bool
}

// NewWriter creates file 0 with its header line. The header is the
// FieldKey names joined by the delimiter.
func NewWriter(cfg types.OutputConfig) (*Writer, error) {
	cfg = withOutputDefaults(cfg)
	w := &Writer{
		base:      cfg.OutputFile,
		delimiter: cfg.Delimiter,
		breakSize: cfg.BreakSize,
		header:    strings.Join(types.FieldNames(), cfg.Delimiter),
	}
	if err := w.start(); err != nil {
		return nil, err
	}
	return w, nil
}

func withOutputDefaults(cfg types.OutputConfig) types.OutputConfig {
	if cfg.BreakSize <= 0 {
		cfg.BreakSize = types.DefaultBreakSize
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = types.DefaultDelimiter
	}
	return cfg
}

// Path returns the name of output file n.
func (w *Writer) Path(n int) string {
	return fmt.Sprintf("%s%d%s", w.base, n, Ext)
}

// FileIndex returns the zero-based index of the current output file.
func (w *Writer) FileIndex() int { return w.fileIndex }

// LineCount returns the number of data lines in the current output file.
func (w *Writer) LineCount() int { return w.lineCount }

// Write appends rec as one line. When the current file is full the writer
// moves to the next index first and writes that file's header.
func (w *Writer) Write(rec types.Record) error {
	if w.lineCount >= w.breakSize {
		w.fileIndex++
		w.lineCount = 0
		w.started = false
	}
	if !w.started {
		if err := w.start(); err != nil {
			return err
		}
	}
	if err := w.appendLine(strings.Join(rec.Values(), w.delimiter)); err != nil {
		return err
	}
	w.lineCount++
	return nil
}

// start creates the current file and writes its header, replacing any
// file of the same name.
func (w *Writer) start() error {
	path := w.Path(w.fileIndex)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(w.header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	w.started = true
	return nil
}

func (w *Writer) appendLine(line string) error {
	path := w.Path(w.fileIndex)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("writing to %s: %w", path, err)
	}
	return f.Close()
}

// CleanDir removes the .csv files directly inside the directory that will
// hold output files for base. It returns the number of files removed.
// A missing directory is not an error.
func CleanDir(base string) (int, error) {
	dir := filepath.Dir(base)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading output directory %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
