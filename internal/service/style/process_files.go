package style

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/ingest"
)

// ProcessFiles builds a new active style from parallel source/target files:
// segment, align, pair, detect conflicts, compute statistics, persist.
// A file that fails to read degrades to empty text inside the pipeline; the
// run itself only fails on invalid input or a persistence error.
func (s *Service) ProcessFiles(ctx context.Context, input ProcessFilesInput) (*domain.CustomTranslationStyle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sources := toSources(input.SourceFiles)
	targets := toSources(input.TargetFiles)

	result, err := s.pipeline.Run(ctx, input.SourceLanguage, input.TargetLanguage, sources, targets)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}

	now := time.Now().UTC()
	created := &domain.CustomTranslationStyle{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(input.Name),
		Description:      trimOrNil(input.Description),
		SourceLanguage:   input.SourceLanguage,
		TargetLanguage:   input.TargetLanguage,
		TranslationPairs: result.Pairs,
		Conflicts:        result.Conflicts,
		Statistics:       result.Statistics,
		CreatedAt:        now,
		UpdatedAt:        now,
		IsActive:         true,
	}

	if err := s.styles.Save(ctx, created); err != nil {
		return nil, fmt.Errorf("save style: %w", err)
	}

	s.cache.InvalidateLanguagePair(ctx, created.SourceLanguage, created.TargetLanguage)

	s.log.InfoContext(ctx, "style created from files",
		slog.String("style_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Int("pairs", len(created.TranslationPairs)),
		slog.Int("conflicts", len(created.Conflicts)),
		slog.Int("files_failed", result.FilesFailed),
	)

	return created, nil
}

func toSources(files []FileInput) []ingest.Source {
	sources := make([]ingest.Source, len(files))
	for i, f := range files {
		sources[i] = ingest.BlobSource{FileName: f.Name, Content: f.Content}
	}
	return sources
}
