package style

import (
	"context"
	"fmt"

	"github.com/styleforge/backend/internal/domain"
)

// GetStylesByLanguagePair returns all active styles for an exact
// source→target direction, consulting the cache first. Tags are compared
// verbatim: "en" never matches "en-US".
func (s *Service) GetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, error) {
	if err := domain.ValidateLanguageTag("sourceLanguage", sourceLang); err != nil {
		return nil, err
	}
	if err := domain.ValidateLanguageTag("targetLanguage", targetLang); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.GetStylesByLanguagePair(ctx, sourceLang, targetLang); ok {
		return cached, nil
	}

	styles, err := s.styles.ListByLanguagePair(ctx, sourceLang, targetLang)
	if err != nil {
		return nil, fmt.Errorf("list styles by language pair: %w", err)
	}

	s.cache.SetStylesByLanguagePair(ctx, sourceLang, targetLang, styles)

	return styles, nil
}
