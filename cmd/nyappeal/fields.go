// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nyappeal/internal/extract"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the output fields and how each is extracted",
	Long: `Fields prints the output columns in order with a short description of the
rule that fills each one. Derived fields are computed from other fields
after extraction.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		return printFields(os.Stdout, extract.DefaultRules(), asYAML)
	},
}

// fieldEntry is one rule in the YAML listing.
type fieldEntry struct {
	Field    string `yaml:"field"`
	Rule     string `yaml:"rule"`
	Derived  bool   `yaml:"derived,omitempty"`
	Requires string `yaml:"requires,omitempty"`
}

func printFields(w io.Writer, rules []extract.Rule, asYAML bool) error {
	if asYAML {
		entries := make([]fieldEntry, len(rules))
		for i, r := range rules {
			entries[i] = fieldEntry{
				Field:    string(r.Key),
				Rule:     r.Summary,
				Derived:  r.Strategy == nil,
				Requires: string(r.Requires),
			}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding fields: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%-3s  %-24s  %s\n", "#", "Field", "Rule")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for i, r := range rules {
		fmt.Fprintf(w, "%-3d  %-24s  %s\n", i+1, r.Key, r.Summary)
	}
	return nil
}

func init() {
	fieldsCmd.Flags().Bool("yaml", false, "print the rule table as YAML")
	rootCmd.AddCommand(fieldsCmd)
}
