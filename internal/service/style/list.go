package style

import (
	"context"
	"fmt"

	"github.com/styleforge/backend/internal/domain"
)

// ListStyles returns every persisted style, newest first.
func (s *Service) ListStyles(ctx context.Context) ([]*domain.CustomTranslationStyle, error) {
	styles, err := s.styles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}

	return styles, nil
}
