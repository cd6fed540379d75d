// Package curation implements the workflow for refining a persisted style:
// pair CRUD, refinement annotations, and conflict resolution. Every operation
// follows the same shape: load the style, validate, mutate, recompute
// statistics, save.
package curation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

type styleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error)
	Save(ctx context.Context, style *domain.CustomTranslationStyle) error
}

type styleCache interface {
	InvalidateLanguagePair(ctx context.Context, sourceLang, targetLang string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides curation operations over persisted styles.
type Service struct {
	styles styleRepo
	cache  styleCache
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Curation service.
func NewService(log *slog.Logger, styles styleRepo, cache styleCache, tx txManager) *Service {
	return &Service{
		styles: styles,
		cache:  cache,
		tx:     tx,
		log:    log.With("service", "curation"),
	}
}

// mutate runs one curation step inside a transaction: load, apply fn,
// recompute statistics, stamp updatedAt, save. fn mutates the style in place
// and returns an error to abort without saving. On success the direction's
// cache entry is invalidated.
func (s *Service) mutate(ctx context.Context, styleID uuid.UUID, fn func(style *domain.CustomTranslationStyle) error) (*domain.CustomTranslationStyle, error) {
	if styleID == uuid.Nil {
		return nil, domain.NewValidationError("style_id", "required")
	}

	var style *domain.CustomTranslationStyle
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		style, err = s.styles.GetByID(ctx, styleID)
		if err != nil {
			return fmt.Errorf("get style: %w", err)
		}

		if err := fn(style); err != nil {
			return err
		}

		style.RecomputeStatistics()
		style.UpdatedAt = time.Now().UTC()

		if err := s.styles.Save(ctx, style); err != nil {
			return fmt.Errorf("save style: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateLanguagePair(ctx, style.SourceLanguage, style.TargetLanguage)

	return style, nil
}
