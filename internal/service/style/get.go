package style

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// GetStyle returns the full aggregate by id.
func (s *Service) GetStyle(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("style_id", "required")
	}

	style, err := s.styles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get style: %w", err)
	}

	return style, nil
}
