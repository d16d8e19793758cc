// Package main contains Mage build targets for nyappeal developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "nyappeal"
	cmdPkg  = "./cmd/nyappeal"

	// buildTags enables the SQLite FTS5 module used by the case index.
	buildTags = "sqlite_fts5"
)

// Init creates the decisions/ input and output/ directories.
func Init() error {
	for _, dir := range []string{decisionsDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	if err := sh.RunV("go", "build",
		"-tags", buildTags,
		"-ldflags", "-X main.version="+version,
		"-o", binPath, cmdPkg,
	); err != nil {
		return err
	}
	fmt.Printf("Built %s (%s)\n", binPath, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "-tags", buildTags, "./...")
}

// Stats prints Go line counts per package and the size of the working
// corpus: decisions waiting in decisions/ and CSV files in output/.
func Stats() error {
	prod, tests, err := goLinesByPackage(".")
	if err != nil {
		return err
	}

	pkgs := make([]string, 0, len(prod))
	for pkg := range prod {
		pkgs = append(pkgs, pkg)
	}
	for pkg := range tests {
		if _, ok := prod[pkg]; !ok {
			pkgs = append(pkgs, pkg)
		}
	}
	slices.Sort(pkgs)

	var totalProd, totalTests int
	fmt.Printf("%-28s %8s %8s\n", "package", "code", "tests")
	for _, pkg := range pkgs {
		fmt.Printf("%-28s %8d %8d\n", pkg, prod[pkg], tests[pkg])
		totalProd += prod[pkg]
		totalTests += tests[pkg]
	}
	fmt.Printf("%-28s %8d %8d\n", "total", totalProd, totalTests)

	decisions, err := countFiles(decisionsDir, ".txt")
	if err != nil {
		return err
	}
	outputs, err := countFiles(outputDir, ".csv")
	if err != nil {
		return err
	}
	fmt.Printf("\ndecisions: %d, output files: %d\n", decisions, outputs)
	return nil
}

// goLinesByPackage counts non-blank lines of .go files under root, keyed by
// package directory, split into production and test code. Directories
// whose names start with "_" are skipped, as the go tool skips them.
func goLinesByPackage(root string) (prod, tests map[string]int, err error) {
	prod, tests = map[string]int{}, map[string]int{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || d.Name() == ".git") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		pkg := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			tests[pkg] += n
		} else {
			prod[pkg] += n
		}
		return nil
	})
	return prod, tests, err
}

// countFiles counts files with the given suffix directly inside dir. A
// missing dir counts as empty.
func countFiles(dir, suffix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			n++
		}
	}
	return n, nil
}
