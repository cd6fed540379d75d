// Package ingest turns uploaded parallel source/target files into translation
// pairs, conflicts, and statistics: the processing half of the translation
// style engine. Curation of the resulting style lives in the service layer.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/ingest/align"
	"github.com/styleforge/backend/internal/ingest/conflict"
	"github.com/styleforge/backend/internal/ingest/segment"
)

// Config tunes the pipeline.
type Config struct {
	// MergeDuplicates enables the post-pass that collapses pairs sharing a
	// normalized (source, target) key. Off by default: the base pipeline
	// keeps one record per surviving alignment.
	MergeDuplicates bool
	// MaxConcurrentReads bounds parallel file reads. Zero means unbounded.
	MaxConcurrentReads int
}

// Result is the outcome of one processing run.
type Result struct {
	Pairs      []domain.TranslationPair
	Conflicts  []domain.TranslationConflict
	Statistics domain.Statistics

	FilesRead   int
	FilesFailed int
	Duration    time.Duration
}

// Pipeline runs segmentation, alignment, pair building, conflict detection,
// and statistics for one processing run. File reads may happen concurrently;
// everything downstream is synchronous and deterministic: results are merged
// in source-file-major, target-file-major, sentence-index order regardless of
// read completion order.
type Pipeline struct {
	log      *slog.Logger
	strategy align.Strategy
	cfg      Config
}

// New creates a Pipeline. A nil strategy defaults to positional alignment.
func New(log *slog.Logger, strategy align.Strategy, cfg Config) *Pipeline {
	if strategy == nil {
		strategy = align.Positional{}
	}
	return &Pipeline{
		log:      log.With("component", "ingest"),
		strategy: strategy,
		cfg:      cfg,
	}
}

// Run processes the given source and target files into pairs, conflicts, and
// statistics. A failing file read degrades to empty text for that file (and
// therefore zero sentences) rather than aborting the run; the only returned
// error is context cancellation during reads.
func (p *Pipeline) Run(ctx context.Context, sourceLang, targetLang string, sources, targets []Source) (Result, error) {
	start := time.Now()

	var result Result

	sourceDocs, srcFailed, err := p.readAll(ctx, sources)
	if err != nil {
		return Result{}, err
	}
	targetDocs, tgtFailed, err := p.readAll(ctx, targets)
	if err != nil {
		return Result{}, err
	}
	result.FilesFailed = srcFailed + tgtFailed
	result.FilesRead = len(sources) + len(targets) - result.FilesFailed

	alignments := p.strategy.Align(sourceDocs, targetDocs)

	result.Pairs = buildPairs(alignments, sourceLang, targetLang, time.Now().UTC())
	if p.cfg.MergeDuplicates {
		result.Pairs = MergeDuplicatePairs(result.Pairs)
	}
	result.Conflicts = conflict.Detect(result.Pairs)
	result.Statistics = domain.ComputeStatistics(result.Pairs, result.Conflicts)
	result.Duration = time.Since(start)

	p.log.InfoContext(ctx, "processing run finished",
		slog.Int("files_read", result.FilesRead),
		slog.Int("files_failed", result.FilesFailed),
		slog.Int("pairs", len(result.Pairs)),
		slog.Int("conflicts", len(result.Conflicts)),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

// readAll reads every file concurrently and segments each into sentences.
// Results land in a slice indexed by input position, so document order is
// stable no matter which read completes first.
func (p *Pipeline) readAll(ctx context.Context, files []Source) ([]align.Document, int, error) {
	docs := make([]align.Document, len(files))
	failed := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if p.cfg.MaxConcurrentReads > 0 {
		g.SetLimit(p.cfg.MaxConcurrentReads)
	}

	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := f.ReadText(gctx)
			if err != nil {
				// Per-file fail-soft: the run continues with whatever
				// files succeeded.
				p.log.WarnContext(gctx, "file read failed, continuing with empty text",
					slog.String("file", f.Name()),
					slog.Any("error", err),
				)
				failed[i] = true
				text = ""
			}
			docs[i] = align.Document{File: f.Name(), Sentences: segment.Sentences(text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var failedCount int
	for _, f := range failed {
		if f {
			failedCount++
		}
	}
	return docs, failedCount, nil
}
