// Package style implements style lifecycle operations: building a new style
// from uploaded file pairs and managing the persisted collection.
package style

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/ingest"
)

type styleRepo interface {
	Save(ctx context.Context, style *domain.CustomTranslationStyle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error)
	Update(ctx context.Context, id uuid.UUID, params domain.StyleUpdateParams) (*domain.CustomTranslationStyle, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.CustomTranslationStyle, error)
	ListByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, error)
}

type styleCache interface {
	GetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, bool)
	SetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string, styles []*domain.CustomTranslationStyle)
	InvalidateLanguagePair(ctx context.Context, sourceLang, targetLang string)
}

type pipelineRunner interface {
	Run(ctx context.Context, sourceLang, targetLang string, sources, targets []ingest.Source) (ingest.Result, error)
}

// Service provides style management operations.
type Service struct {
	styles   styleRepo
	cache    styleCache
	pipeline pipelineRunner
	log      *slog.Logger
}

// NewService creates a new Style service. cache may be a no-op implementation
// when Redis is disabled.
func NewService(
	log *slog.Logger,
	styles styleRepo,
	cache styleCache,
	pipeline pipelineRunner,
) *Service {
	return &Service{
		styles:   styles,
		cache:    cache,
		pipeline: pipeline,
		log:      log.With("service", "style"),
	}
}

// NopCache satisfies the cache dependency when Redis is disabled.
type NopCache struct{}

func (NopCache) GetStylesByLanguagePair(context.Context, string, string) ([]*domain.CustomTranslationStyle, bool) {
	return nil, false
}
func (NopCache) SetStylesByLanguagePair(context.Context, string, string, []*domain.CustomTranslationStyle) {
}
func (NopCache) InvalidateLanguagePair(context.Context, string, string) {}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
