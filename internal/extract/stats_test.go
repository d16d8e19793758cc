// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nyappeal/pkg/types"
)

func TestNewStatistics(t *testing.T) {
	s := NewStatistics()
	_, err := uuid.Parse(s.RunID)
	require.NoError(t, err)
	assert.False(t, s.Started.IsZero())
	assert.NotEqual(t, s.RunID, NewStatistics().RunID)
}

func TestStatisticsReport(t *testing.T) {
	s := NewStatistics()
	s.Documents = 5
	s.Skipped = 1
	s.DateProblems = 2
	s.FileIndex = 2
	s.LineCount = 1
	s.Hits[types.FieldCourt] = 4
	s.Finished = s.Started.Add(1500 * time.Millisecond)

	var buf bytes.Buffer
	s.Report(&buf)
	out := buf.String()

	assert.Contains(t, out, "run "+s.RunID)
	assert.Contains(t, out, "elapsed: 1.5s")
	assert.Contains(t, out, "documents: 5, skipped: 1, date problems: 2, index problems: 0")
	assert.Contains(t, out, "output files: 3, lines in last file: 1")
	assert.Regexp(t, `Court\s+4\n`, out)
	assert.Regexp(t, `DocumentLength\s+0\n`, out)
	assert.Equal(t, 3, s.Problems())
}

func TestCountHits(t *testing.T) {
	s := NewStatistics()
	rec := types.NewRecord()
	rec[types.FieldCounty] = "Erie County"
	rec[types.FieldJudge] = ""

	s.countHits(rec)
	s.countHits(rec)

	assert.Equal(t, 2, s.Hits[types.FieldCounty])
	assert.Equal(t, 0, s.Hits[types.FieldJudge])
}
