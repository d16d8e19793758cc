// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one parse: it reads every document of the input
// directory in file-name order, assembles a record for each and writes the
// records to rolling output files and, optionally, the case index.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/nyappeal/internal/casedb"
	"github.com/pdiddy/nyappeal/internal/corpus"
	"github.com/pdiddy/nyappeal/internal/extract"
	"github.com/pdiddy/nyappeal/internal/output"
	"github.com/pdiddy/nyappeal/internal/sanitize"
	"github.com/pdiddy/nyappeal/pkg/types"
)

// Indexer receives every assembled record.
type Indexer interface {
	Upsert(ctx context.Context, runID string, rec types.Record) error
}

// Options holds the collaborators of a run. Zero values are usable.
type Options struct {
	// Logger receives diagnostics. Nil discards them.
	Logger *zap.Logger

	// Out receives progress lines and the run report. Nil discards them.
	Out io.Writer

	// Index overrides the case index opened from ParseConfig.DBPath.
	Index Indexer
}

// Run parses cfg.InputDir into cfg.OutputFile. Per-document problems are
// counted in the returned statistics; missing input, unwritable output and
// a case index that cannot be opened end the run with an error. A
// cancelled ctx stops the run between documents.
func Run(ctx context.Context, cfg types.ParseConfig, opts Options) (*extract.Statistics, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	w := opts.Out
	if w == nil {
		w = io.Discard
	}

	paths, err := corpus.List(cfg.InputDir)
	if err != nil {
		return nil, err
	}

	removed, err := output.CleanDir(cfg.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("cleaning output directory: %w", err)
	}
	if removed > 0 {
		logger.Debug("removed previous output", zap.Int("files", removed))
	}

	writer, err := output.NewWriter(cfg.OutputConfig)
	if err != nil {
		return nil, err
	}

	index := opts.Index
	if index == nil && cfg.DBPath != "" {
		store, err := casedb.NewStore(types.CaseIndexConfig{DBPath: cfg.DBPath})
		if err != nil {
			return nil, fmt.Errorf("opening case index: %w", err)
		}
		defer store.Close()
		index = store
	}

	engine := extract.New(sanitize.New(cfg.Delimiter, cfg.MaxFieldLength), logger)
	stats := extract.NewStatistics()
	logger.Info("parse started",
		zap.String("run_id", stats.RunID),
		zap.String("input_dir", cfg.InputDir),
		zap.Int("documents", len(paths)),
	)

	finish := func() {
		stats.FileIndex = writer.FileIndex()
		stats.LineCount = writer.LineCount()
		stats.Finished = time.Now()
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			finish()
			return stats, ctx.Err()
		default:
		}

		doc, err := corpus.Read(path)
		if err != nil {
			stats.Documents++
			stats.Skipped++
			logger.Warn("document skipped", zap.String("document", path), zap.Error(err))
			fmt.Fprintf(w, "skipped %s: %v\n", path, err)
			continue
		}

		rec := engine.Assemble(doc, stats)
		if err := writer.Write(rec); err != nil {
			finish()
			return stats, fmt.Errorf("writing record for %s: %w", doc.Name, err)
		}

		if index != nil {
			if err := index.Upsert(ctx, stats.RunID, rec); err != nil {
				stats.IndexProblems++
				logger.Warn("case index write failed", zap.String("document", doc.Name), zap.Error(err))
			}
		}

		fmt.Fprintf(w, "parsed  %s\n", doc.Name)
	}

	finish()
	logger.Info("parse finished",
		zap.String("run_id", stats.RunID),
		zap.Int("documents", stats.Documents),
		zap.Int("problems", stats.Problems()),
	)
	stats.Report(w)
	return stats, nil
}
