// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.TXT", "notes.md", "10.txt", "2.txt"} {
		writeFile(t, dir, name, "x")
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	paths, err := List(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"10.txt", "2.txt", "a.txt", "b.txt"}, names)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input directory")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "case.txt", "People v Doe\r\n")

	doc, err := Read(filepath.Join(dir, "case.txt"))
	require.NoError(t, err)
	assert.Equal(t, "case.txt", doc.Name)
	assert.Equal(t, "People v Doe\r\n", doc.Text)

	_, err = Read(filepath.Join(dir, "gone.txt"))
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
