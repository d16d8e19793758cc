package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	decisionsDir = "decisions"
	outputDir    = "output"
)

var (
	outputBase = filepath.Join(outputDir, "cases")
	caseDB     = filepath.Join(outputDir, "cases.db")
	binPath    = filepath.Join(binDir, binName)
)

// Parse builds the CLI and parses decisions/ into output/cases<N>.csv,
// updating the case index at output/cases.db.
func Parse() error {
	mg.Deps(Build)
	return sh.RunV(binPath,
		"--input-dir", decisionsDir,
		"--output-file", outputBase,
		"--db", caseDB,
	)
}

// Export writes the case index to output/export.xlsx.
func Export() error {
	mg.Deps(Build)
	return sh.RunV(binPath,
		"cases", "export", "--db", caseDB, "--format", "xlsx",
		"--out", filepath.Join(outputDir, "export.xlsx"),
	)
}
