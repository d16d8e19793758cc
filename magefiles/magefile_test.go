package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestGoLinesByPackage(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"internal/a/a.go":      "package a\n\nfunc A() {}\n",
		"internal/a/a_test.go": "package a\n\n\nfunc TestA() {}\n",
		"cmd/x/main.go":        "package main\n",
		"_skipped/b.go":        "package b\nfunc B() {}\n",
		"internal/a/notes.md":  "not go\n",
	})

	prod, tests, err := goLinesByPackage(root)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		filepath.Join(root, "internal", "a"): 2,
		filepath.Join(root, "cmd", "x"):      1,
	}, prod)
	assert.Equal(t, map[string]int{
		filepath.Join(root, "internal", "a"): 2,
	}, tests)
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":     "x",
		"b.txt":     "x",
		"c.csv":     "x",
		"sub/d.txt": "x",
	})

	n, err := countFiles(dir, ".txt")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = countFiles(filepath.Join(dir, "missing"), ".txt")
	require.NoError(t, err)
	assert.Zero(t, n)
}
