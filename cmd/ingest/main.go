// Command ingest builds a translation style from parallel corpus files on the
// local filesystem. It is intended to be run offline, not as part of the main
// server.
//
// Flags:
//
//	--name         style name (required)
//	--description  optional style description
//	--source-lang  source language tag, e.g. en (required)
//	--target-lang  target language tag, e.g. es (required)
//	--source       comma-separated source file paths (required)
//	--target       comma-separated target file paths (required)
//	--dry-run      run the pipeline and print statistics without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/styleforge/backend/internal/adapter/postgres"
	stylerepo "github.com/styleforge/backend/internal/adapter/postgres/style"
	"github.com/styleforge/backend/internal/app"
	"github.com/styleforge/backend/internal/config"
	"github.com/styleforge/backend/internal/ingest"
	"github.com/styleforge/backend/internal/ingest/align"
	stylesvc "github.com/styleforge/backend/internal/service/style"
)

func main() {
	nameFlag := flag.String("name", "", "style name")
	descriptionFlag := flag.String("description", "", "optional style description")
	sourceLangFlag := flag.String("source-lang", "", "source language tag, e.g. en")
	targetLangFlag := flag.String("target-lang", "", "target language tag, e.g. es")
	sourceFlag := flag.String("source", "", "comma-separated source file paths")
	targetFlag := flag.String("target", "", "comma-separated target file paths")
	dryRunFlag := flag.Bool("dry-run", false, "run the pipeline without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	sourcePaths := splitPaths(*sourceFlag)
	targetPaths := splitPaths(*targetFlag)
	if len(sourcePaths) == 0 || len(targetPaths) == 0 {
		logger.Error("at least one --source and one --target file are required")
		os.Exit(1)
	}

	ctx := context.Background()
	pipeline := ingest.New(logger, align.Positional{}, ingest.Config{
		MergeDuplicates:    cfg.Pipeline.MergeDuplicates,
		MaxConcurrentReads: cfg.Pipeline.MaxConcurrentReads,
	})

	if *dryRunFlag {
		if err := dryRun(ctx, pipeline, *sourceLangFlag, *targetLangFlag, sourcePaths, targetPaths); err != nil {
			logger.Error("dry run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := stylesvc.NewService(logger, stylerepo.New(pool, logger), stylesvc.NopCache{}, pipeline)

	input := stylesvc.ProcessFilesInput{
		Name:           *nameFlag,
		SourceLanguage: *sourceLangFlag,
		TargetLanguage: *targetLangFlag,
	}
	if desc := strings.TrimSpace(*descriptionFlag); desc != "" {
		input.Description = &desc
	}
	if input.SourceFiles, err = readFiles(sourcePaths); err != nil {
		logger.Error("read source files", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if input.TargetFiles, err = readFiles(targetPaths); err != nil {
		logger.Error("read target files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	style, err := svc.ProcessFiles(ctx, input)
	if err != nil {
		logger.Error("process files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("created style %s (%s -> %s): %d pairs, %d conflicts, accuracy %.2f\n",
		style.ID, style.SourceLanguage, style.TargetLanguage,
		style.Statistics.TotalPairs, style.Statistics.TotalConflicts, style.Statistics.Accuracy)
}

// dryRun runs the pipeline against files read lazily from disk and prints the
// outcome without touching the database.
func dryRun(ctx context.Context, pipeline *ingest.Pipeline, sourceLang, targetLang string, sourcePaths, targetPaths []string) error {
	result, err := pipeline.Run(ctx, sourceLang, targetLang, toFileSources(sourcePaths), toFileSources(targetPaths))
	if err != nil {
		return err
	}

	fmt.Printf("dry run (%s -> %s): %d files read, %d failed, %d pairs, %d conflicts, accuracy %.2f, took %s\n",
		sourceLang, targetLang, result.FilesRead, result.FilesFailed,
		result.Statistics.TotalPairs, result.Statistics.TotalConflicts,
		result.Statistics.Accuracy, result.Duration)
	return nil
}

func toFileSources(paths []string) []ingest.Source {
	sources := make([]ingest.Source, len(paths))
	for i, p := range paths {
		sources[i] = ingest.FileSource{Path: p}
	}
	return sources
}

func readFiles(paths []string) ([]stylesvc.FileInput, error) {
	files := make([]stylesvc.FileInput, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, stylesvc.FileInput{Name: p, Content: string(data)})
	}
	return files, nil
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
