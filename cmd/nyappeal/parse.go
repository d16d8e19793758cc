// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nyappeal/internal/pipeline"
	"github.com/pdiddy/nyappeal/pkg/types"
)

// Config keys shared by flags, the config file and NYAPPEAL_* variables.
const (
	keyInputDir       = "input_dir"
	keyOutputFile     = "output_file"
	keyBreakSize      = "break_size"
	keyDelimiter      = "delimiter"
	keyMaxFieldLength = "max_field_length"
	keyDB             = "db"
	keyVerbose        = "verbose"
)

// parseFlags maps each parse flag to its config key.
var parseFlags = map[string]string{
	"input-dir":        keyInputDir,
	"output-file":      keyOutputFile,
	"break-size":       keyBreakSize,
	"delimiter":        keyDelimiter,
	"max-field-length": keyMaxFieldLength,
	"db":               keyDB,
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a directory of decisions into delimited records",
	Long: `Parse reads every .txt file of --input-dir in file-name order, extracts
one record per decision and writes the records to <output-file><N>.csv.
Existing .csv files in the output directory are removed first.

Unreadable documents and unparsable dates are reported and counted; the run
summary is printed at the end.`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input-dir", "i", "", "directory of .txt decisions")
	cmd.Flags().StringP("output-file", "o", "", "output base path; files are named <base><N>.csv")
	cmd.Flags().IntP("break-size", "b", types.DefaultBreakSize, "data lines per output file")
	cmd.Flags().String("delimiter", types.DefaultDelimiter, "field delimiter")
	cmd.Flags().Int("max-field-length", types.DefaultMaxFieldLength, "maximum characters per field value")
	cmd.Flags().String("db", "", "SQLite case index to update (optional)")
}

// bindParseFlags binds the parse flags of cmd to their config keys so a
// flag given on the command line overrides the config file.
func bindParseFlags(cmd *cobra.Command) error {
	for flag, key := range parseFlags {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

// parseConfig reads the parse settings from viper.
func parseConfig() types.ParseConfig {
	cfg := types.ParseConfig{
		InputDir:       viper.GetString(keyInputDir),
		MaxFieldLength: viper.GetInt(keyMaxFieldLength),
		DBPath:         viper.GetString(keyDB),
	}
	cfg.OutputFile = viper.GetString(keyOutputFile)
	cfg.BreakSize = viper.GetInt(keyBreakSize)
	cfg.Delimiter = viper.GetString(keyDelimiter)
	return cfg
}

func runParse(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v; use --input-dir and --output-file", args)
	}
	if err := bindParseFlags(cmd); err != nil {
		return err
	}

	cfg := parseConfig().WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	stats, err := pipeline.Run(cmd.Context(), cfg, pipeline.Options{
		Logger: logger,
		Out:    os.Stdout,
	})
	if errors.Is(err, context.Canceled) && stats != nil {
		fmt.Fprintf(os.Stderr, "interrupted after %d documents\n", stats.Documents)
	}
	return err
}

func init() {
	addParseFlags(parseCmd)
	rootCmd.AddCommand(parseCmd)
}
