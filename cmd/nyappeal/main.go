// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nyappeal CLI. The root command
// parses a directory of New York appellate decisions into delimited
// records; subcommands list the extraction rules and query or export the
// case index.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. With parse flags it runs a parse; with no
// arguments at all it prints usage.
var rootCmd = &cobra.Command{
	Use:   "nyappeal",
	Short: "Extract case fields from New York appellate decisions",
	Long: `nyappeal reads plain-text New York Appellate Division decisions from an
input directory and writes one delimited record per decision to numbered CSV
files (<output><N>.csv), rolling over to a new file every --break-size lines.

Fields include the case citation, lower court, county, judges, district
attorney, disposition keywords, grounds for appeal, dates, mode of conviction
and crimes. Run "nyappeal fields" for the full list.

With --db, records are also indexed in SQLite for "nyappeal cases".`,
	Example: `  nyappeal -i decisions/ -o out/cases
  nyappeal parse -i decisions/ -o out/cases -b 5000 --db cases.db`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() == 0 && len(args) == 0 {
			return cmd.Help()
		}
		return runParse(cmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nyappeal.yaml or ~/.config/nyappeal/nyappeal.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log debug diagnostics in a human-readable format")
	addParseFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nyappeal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nyappeal"))
		}
	}

	viper.SetEnvPrefix("NYAPPEAL")
	viper.AutomaticEnv()
	_ = viper.BindPFlag(keyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the diagnostics logger: JSON at info level, or the
// console encoder at debug level with --verbose.
func newLogger() (*zap.Logger, error) {
	if viper.GetBool(keyVerbose) {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	return cfg.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
