// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/nyappeal/internal/casedb"
	"github.com/pdiddy/nyappeal/pkg/types"
)

const decision = `People v Doe
2012 NY Slip Op 01234 [98 AD3d 1250]
Appellate Division, Fourth Department
Appeal from a judgment of the Erie County Court (Thomas P. Franczyk, J.), rendered January 2, 2011. The judgment convicted defendant, upon a jury verdict, of robbery in the first degree.
It is hereby ORDERED that the judgment so appealed from is unanimously affirmed.
Present—Scudder, P.J., Smith, Peradotto and Lindley, JJ.
Entered: March 23, 2012
`

type fixture struct {
	input  string
	output string
	base   string
}

func newFixture(t *testing.T, docs map[string]string) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		input:  filepath.Join(root, "in"),
		output: filepath.Join(root, "out"),
	}
	f.base = filepath.Join(f.output, "cases")
	require.NoError(t, os.MkdirAll(f.input, 0o755))
	for name, text := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(f.input, name), []byte(text), 0o644))
	}
	return f
}

func (f fixture) config(breakSize int) types.ParseConfig {
	cfg := types.ParseConfig{InputDir: f.input}
	cfg.OutputFile = f.base
	cfg.BreakSize = breakSize
	return cfg
}

func dataLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.NotEmpty(t, lines)
	return lines[1:]
}

type failingIndex struct{ calls int }

func (f *failingIndex) Upsert(context.Context, string, types.Record) error {
	f.calls++
	return errors.New("disk full")
}

func TestRunRollover(t *testing.T) {
	docs := map[string]string{}
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		docs[name] = decision
	}
	f := newFixture(t, docs)

	var out bytes.Buffer
	stats, err := Run(context.Background(), f.config(2), Options{Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Documents)
	assert.Equal(t, 2, stats.FileIndex)
	assert.Equal(t, 1, stats.LineCount)
	assert.Equal(t, 5, stats.Hits[types.FieldCourt])

	for i, want := range []int{2, 2, 1} {
		assert.Len(t, dataLines(t, f.base+string(rune('0'+i))+".csv"), want, "file %d", i)
	}
	assert.NoFileExists(t, f.base+"3.csv")
	assert.Contains(t, out.String(), "parsed  e.txt")
	assert.Contains(t, out.String(), "documents: 5, skipped: 0")
}

func TestRunRecordValues(t *testing.T) {
	f := newFixture(t, map[string]string{"doe.txt": decision})

	_, err := Run(context.Background(), f.config(10), Options{})
	require.NoError(t, err)

	lines := dataLines(t, f.base+"0.csv")
	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "|")
	require.Len(t, fields, len(types.Fields))
	assert.Equal(t, "doe.txt", fields[0])
	assert.Equal(t, "98 AD3d 1250", fields[1])
	assert.Equal(t, "K", fields[2])
	assert.Equal(t, "County Court", fields[3])
	assert.Equal(t, "Erie County", fields[4])
}

func TestRunIgnoresNonTextFiles(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.txt":     decision,
		"notes.md":  decision,
		"b.txt.bak": decision,
	})

	stats, err := Run(context.Background(), f.config(10), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Documents)
	assert.Len(t, dataLines(t, f.base+"0.csv"), 1)
}

func TestRunEmptyInputWritesHeader(t *testing.T) {
	f := newFixture(t, nil)

	stats, err := Run(context.Background(), f.config(10), Options{})
	require.NoError(t, err)
	assert.Zero(t, stats.Documents)
	assert.Empty(t, dataLines(t, f.base+"0.csv"))
}

func TestRunRemovesPreviousOutput(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": decision})
	require.NoError(t, os.MkdirAll(f.output, 0o755))
	stale := filepath.Join(f.output, "cases7.csv")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err := Run(context.Background(), f.config(10), Options{})
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestRunSkipsUnreadableDocument(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": decision})
	require.NoError(t, os.Symlink(filepath.Join(f.input, "missing"), filepath.Join(f.input, "b.txt")))

	core, logs := observer.New(zapcore.WarnLevel)
	stats, err := Run(context.Background(), f.config(10), Options{Logger: zap.New(core)})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 1, stats.Skipped)
	assert.Len(t, dataLines(t, f.base+"0.csv"), 1)
	assert.Equal(t, 1, logs.FilterMessage("document skipped").Len())
}

func TestRunMissingInputDirectory(t *testing.T) {
	f := newFixture(t, nil)
	cfg := f.config(10)
	cfg.InputDir = filepath.Join(f.input, "nope")

	_, err := Run(context.Background(), cfg, Options{})
	require.Error(t, err)
	assert.NoFileExists(t, f.base+"0.csv")
}

func TestRunInvalidConfig(t *testing.T) {
	f := newFixture(t, nil)
	cfg := f.config(10)
	cfg.Delimiter = ","

	_, err := Run(context.Background(), cfg, Options{})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": decision, "b.txt": decision})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := Run(ctx, f.config(10), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, stats)
	assert.Zero(t, stats.Documents)
	assert.FileExists(t, f.base+"0.csv")
}

func TestRunIndexFailureIsCounted(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": decision, "b.txt": decision})
	index := &failingIndex{}

	stats, err := Run(context.Background(), f.config(10), Options{Index: index})
	require.NoError(t, err)
	assert.Equal(t, 2, index.calls)
	assert.Equal(t, 2, stats.IndexProblems)
	assert.Len(t, dataLines(t, f.base+"0.csv"), 2)
}

func TestRunWritesCaseIndex(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": decision, "b.txt": decision})
	cfg := f.config(10)
	cfg.DBPath = filepath.Join(t.TempDir(), "cases.db")

	stats, err := Run(context.Background(), cfg, Options{})
	require.NoError(t, err)

	store, err := casedb.NewStore(types.CaseIndexConfig{DBPath: cfg.DBPath})
	require.NoError(t, err)
	defer store.Close()

	cases, err := store.Query(context.Background(), casedb.QueryOptions{County: "Erie County"})
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, stats.RunID, cases[0].RunID)
	assert.Equal(t, "a.txt", cases[0].Record[types.FieldFile])
}
