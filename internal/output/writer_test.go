// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nyappeal/pkg/types"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func record(name string) types.Record {
	rec := types.NewRecord()
	rec[types.FieldFile] = name
	return rec
}

func TestNewWriterWritesHeader(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "cases")

	w, err := NewWriter(types.OutputConfig{OutputFile: base, BreakSize: 2, Delimiter: "|"})
	require.NoError(t, err)

	lines := readLines(t, w.Path(0))
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(types.FieldNames(), "|"), lines[0])
	assert.True(t, strings.HasPrefix(lines[0], "File|Casenumber|CivilCriminal|"))
	assert.Equal(t, base+"0.csv", w.Path(0))
}

func TestWriterRollover(t *testing.T) {
	base := filepath.Join(t.TempDir(), "cases")
	w, err := NewWriter(types.OutputConfig{OutputFile: base, BreakSize: 2, Delimiter: "|"})
	require.NoError(t, err)

	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		require.NoError(t, w.Write(record(name)))
	}

	assert.Equal(t, 2, w.FileIndex())
	assert.Equal(t, 1, w.LineCount())

	wantData := [][]string{{"a.txt", "b.txt"}, {"c.txt", "d.txt"}, {"e.txt"}}
	for i, want := range wantData {
		lines := readLines(t, w.Path(i))
		require.Len(t, lines, len(want)+1, "file %d", i)
		assert.Equal(t, strings.Join(types.FieldNames(), "|"), lines[0])
		for j, name := range want {
			fields := strings.Split(lines[j+1], "|")
			assert.Len(t, fields, len(types.Fields))
			assert.Equal(t, name, fields[0])
		}
	}
	assert.NoFileExists(t, w.Path(3))
}

func TestWriterExactMultipleDoesNotCreateEmptyFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "cases")
	w, err := NewWriter(types.OutputConfig{OutputFile: base, BreakSize: 2})
	require.NoError(t, err)

	require.NoError(t, w.Write(record("a.txt")))
	require.NoError(t, w.Write(record("b.txt")))

	assert.Equal(t, 0, w.FileIndex())
	assert.Equal(t, 2, w.LineCount())
	assert.NoFileExists(t, w.Path(1))
}

func TestWriterCustomDelimiter(t *testing.T) {
	base := filepath.Join(t.TempDir(), "cases")
	w, err := NewWriter(types.OutputConfig{OutputFile: base, BreakSize: 10, Delimiter: ";"})
	require.NoError(t, err)

	require.NoError(t, w.Write(record("a.txt")))

	lines := readLines(t, w.Path(0))
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "File;Casenumber;"))
	assert.Equal(t, strings.Repeat(";", len(types.Fields)-1), strings.TrimPrefix(lines[1], "a.txt"))
}

func TestNewWriterUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := NewWriter(types.OutputConfig{OutputFile: filepath.Join(blocker, "cases")})
	assert.Error(t, err)
}

func TestCleanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"old0.csv", "other.csv", "keep.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))

	removed, err := CleanDir(filepath.Join(dir, "cases"))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NoFileExists(t, filepath.Join(dir, "old0.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "other.csv"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
	assert.DirExists(t, filepath.Join(dir, "nested.csv"))
}

func TestCleanDirMissing(t *testing.T) {
	removed, err := CleanDir(filepath.Join(t.TempDir(), "missing", "cases"))
	require.NoError(t, err)
	assert.Zero(t, removed)
}
