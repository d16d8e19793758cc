// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus lists and reads the decision transcripts of an input
// directory.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/nyappeal/pkg/types"
)

// Ext is the suffix of document files. Everything else in the input
// directory is ignored.
const Ext = ".txt"

// List returns the paths of the .txt files directly inside dir, in
// lexicographic file-name order. A missing or unreadable dir is an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Slice(paths, func(i, j int) bool {
		return filepath.Base(paths[i]) < filepath.Base(paths[j])
	})
	return paths, nil
}

// Read loads one document. The document is named by its file name.
func Read(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading document %s: %w", path, err)
	}
	return types.Document{Name: filepath.Base(path), Text: string(data)}, nil
}
