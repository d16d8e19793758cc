// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/nyappeal/pkg/types"
)

// Statistics accumulates counters for one run. It has a single writer and
// is passed explicitly to the code that updates it.
type Statistics struct {
	RunID    string
	Started  time.Time
	Finished time.Time

	// Documents counts every .txt document attempted, readable or not.
	Documents int

	// Skipped counts documents that could not be read.
	Skipped int

	// DateProblems counts dates that could not be parsed for Gap_days.
	DateProblems int

	// IndexProblems counts records the case index rejected.
	IndexProblems int

	// Hits counts non-empty values per field.
	Hits map[types.FieldKey]int

	// FileIndex and LineCount describe the current output file.
	FileIndex int
	LineCount int
}

// NewStatistics starts a run with a fresh ID.
func NewStatistics() *Statistics {
	return &Statistics{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Hits:    make(map[types.FieldKey]int, len(types.Fields)),
	}
}

// Problems returns the number of non-fatal problems seen so far.
func (s *Statistics) Problems() int {
	return s.Skipped + s.DateProblems + s.IndexProblems
}

// countHits increments the hit counter of every non-empty field in rec.
func (s *Statistics) countHits(rec types.Record) {
	for _, k := range types.Fields {
		if rec[k] != "" {
			s.Hits[k]++
		}
	}
}

// Report writes a human-readable summary to w.
func (s *Statistics) Report(w io.Writer) {
	fmt.Fprintf(w, "\nrun %s\n", s.RunID)
	if !s.Finished.IsZero() {
		fmt.Fprintf(w, "elapsed: %s\n", s.Finished.Sub(s.Started).Round(time.Millisecond))
	}
	fmt.Fprintf(w, "documents: %d, skipped: %d, date problems: %d, index problems: %d\n",
		s.Documents, s.Skipped, s.DateProblems, s.IndexProblems)
	fmt.Fprintf(w, "output files: %d, lines in last file: %d\n", s.FileIndex+1, s.LineCount)

	fmt.Fprintln(w, "field hits:")
	for _, k := range types.Fields {
		fmt.Fprintf(w, "  %-24s %d\n", k, s.Hits[k])
	}
}
