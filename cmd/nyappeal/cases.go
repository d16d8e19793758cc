// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nyappeal/internal/casedb"
	"github.com/pdiddy/nyappeal/pkg/types"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Query or export the case index",
	Long: `Cases reads the SQLite case index written by "nyappeal --db". Use
subcommands to search it or export it.`,
}

// --- query subcommand ---

var casesQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the case index with full-text search and filters",
	Long: `Query searches the court, county, keyword, grounds, crimes, judges and
harmless-error fields with FTS5, optionally narrowed by court, county and
civil/criminal. Without search text the filters alone select cases.`,
	RunE: runCasesQuery,
}

func runCasesQuery(cmd *cobra.Command, args []string) error {
	opts, err := caseQueryFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search text, --court, --county, --criminal or --civil")
	}

	store, err := casedb.NewStore(caseIndexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Query(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatCases(cmd.OutOrStdout(), results, jsonOutput)
}

func formatCases(w io.Writer, results []casedb.Case, jsonOutput bool) error {
	if jsonOutput {
		out := make([]map[string]string, len(results))
		for i, c := range results {
			out[i] = make(map[string]string, len(c.Record)+1)
			for k, v := range c.Record {
				out[i][string(k)] = v
			}
			out[i]["RunID"] = c.RunID
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No cases found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-24s  %-20s  %-18s  %-2s  %s\n",
		"Rank", "File", "Casenumber", "County", "KC", "Crimes")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, c := range results {
		r := c.Record
		fmt.Fprintf(w, "%-4d  %-24s  %-20s  %-18s  %-2s  %s\n",
			i+1,
			clip(r[types.FieldFile], 24),
			clip(r[types.FieldCasenumber], 20),
			clip(r[types.FieldCounty], 18),
			r[types.FieldCivilCriminal],
			clip(r[types.FieldCrimes], 34))
	}
	fmt.Fprintf(w, "\n%d cases\n", len(results))
	return nil
}

// clip shortens s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- export subcommand ---

var casesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the case index to YAML, JSON or XLSX",
	Long: `Export writes the case index (or a filtered subset) to --out, or to
export.<format> next to the database. Supports the same filters as query.`,
	RunE: runCasesExport,
}

func runCasesExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	if !slices.Contains(casedb.Formats, format) {
		return fmt.Errorf("unsupported format %q: use yaml, json or xlsx", format)
	}

	opts, err := caseQueryFromFlags(cmd, args)
	if err != nil {
		return err
	}

	cfg := caseIndexConfig(cmd)
	store, err := casedb.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if outPath == "" {
		outPath = defaultExportPath(cfg.DBPath, format)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	n, err := store.Export(cmd.Context(), format, opts, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cases to %s\n", n, outPath)
	return nil
}

// defaultExportPath places export.<format> beside the database.
func defaultExportPath(dbPath, format string) string {
	return filepath.Join(filepath.Dir(dbPath), "export."+format)
}

// --- shared helpers ---

func caseIndexConfig(cmd *cobra.Command) types.CaseIndexConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString(keyDB)
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.CaseIndexConfig{DBPath: dbPath, MaxResults: maxResults}
}

func caseQueryFromFlags(cmd *cobra.Command, args []string) (casedb.QueryOptions, error) {
	court, _ := cmd.Flags().GetString("court")
	county, _ := cmd.Flags().GetString("county")
	criminal, _ := cmd.Flags().GetBool("criminal")
	civil, _ := cmd.Flags().GetBool("civil")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := casedb.QueryOptions{
		Query:      strings.Join(args, " "),
		Court:      court,
		County:     county,
		MaxResults: limit,
	}
	switch {
	case criminal && civil:
		return opts, fmt.Errorf("--criminal and --civil are mutually exclusive")
	case criminal:
		opts.Criminal = &criminal
	case civil:
		isCriminal := false
		opts.Criminal = &isCriminal
	}
	return opts, nil
}

func addCaseFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("court", "", "filter by court, e.g. \"Supreme Court\"")
	cmd.Flags().String("county", "", "filter by county, e.g. \"Erie County\"")
	cmd.Flags().Bool("criminal", false, "only criminal cases")
	cmd.Flags().Bool("civil", false, "only civil cases")
}

func init() {
	casesCmd.PersistentFlags().String("db", "", "SQLite case index (default: db from config)")
	casesCmd.PersistentFlags().Int("max-results", casedb.DefaultMaxResults, "maximum number of query results")

	addCaseFilterFlags(casesQueryCmd)
	casesQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	casesQueryCmd.Flags().Bool("json", false, "output results as JSON")

	addCaseFilterFlags(casesExportCmd)
	casesExportCmd.Flags().String("format", casedb.FormatYAML, "export format: yaml, json or xlsx")
	casesExportCmd.Flags().String("out", "", "output file (default: export.<format> beside the database)")

	casesCmd.AddCommand(casesQueryCmd)
	casesCmd.AddCommand(casesExportCmd)
	rootCmd.AddCommand(casesCmd)
}
