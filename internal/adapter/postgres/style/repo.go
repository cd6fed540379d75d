// Package style implements the CustomTranslationStyle repository using
// PostgreSQL. Scalar metadata lives in typed columns; the pair, conflict and
// statistics collections are stored as JSONB documents since they are always
// read and written as part of the whole aggregate.
package style

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/styleforge/backend/internal/adapter/postgres"
	"github.com/styleforge/backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const stylesTable = "styles"

var styleColumns = []string{
	"id", "name", "description",
	"source_language", "target_language",
	"pairs", "conflicts", "statistics",
	"is_active", "created_at", "updated_at",
}

// Repo provides style persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new style repository.
func New(pool *pgxpool.Pool, log *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		log:  log.With("repo", "style"),
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save upserts the full aggregate keyed by ID and stamps UpdatedAt.
// The last writer wins: a concurrent save of the same style is silently
// overwritten, there is no version check.
func (r *Repo) Save(ctx context.Context, style *domain.CustomTranslationStyle) error {
	pairs, conflicts, stats, err := marshalCollections(style)
	if err != nil {
		return fmt.Errorf("save style %s: %w", style.ID, err)
	}

	style.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Insert(stylesTable).
		Columns(styleColumns...).
		Values(
			style.ID, style.Name, ptrStringToPgText(style.Description),
			style.SourceLanguage, style.TargetLanguage,
			pairs, conflicts, stats,
			style.IsActive, style.CreatedAt, style.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			source_language = EXCLUDED.source_language,
			target_language = EXCLUDED.target_language,
			pairs = EXCLUDED.pairs,
			conflicts = EXCLUDED.conflicts,
			statistics = EXCLUDED.statistics,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "style", style.ID)
	}

	return nil
}

// Update applies a partial metadata update and returns the updated aggregate.
// Only name, description and is_active can be patched this way; collection
// changes go through Save. Returns domain.ErrNotFound for an unknown id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.StyleUpdateParams) (*domain.CustomTranslationStyle, error) {
	builder := psql.Update(stylesTable).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			builder = builder.Set("description", nil)
		} else {
			builder = builder.Set("description", *params.Description)
		}
	}
	if params.IsActive != nil {
		builder = builder.Set("is_active", *params.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	row := querier.QueryRow(ctx, query, args...)

	style, err := scanStyle(row)
	if err != nil {
		return nil, postgres.MapError(err, "style", id)
	}

	return style, nil
}

// Delete removes a style. Idempotent: deleting an unknown id is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(stylesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "style", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the full aggregate by primary key.
// Returns domain.ErrNotFound if the style does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error) {
	query, args, err := psql.Select(styleColumns...).
		From(stylesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	row := querier.QueryRow(ctx, query, args...)

	style, err := scanStyle(row)
	if err != nil {
		return nil, postgres.MapError(err, "style", id)
	}

	return style, nil
}

// List returns all styles ordered by creation time, newest first.
// Rows whose JSONB payload fails to decode are skipped with a warning so one
// corrupt aggregate cannot take the whole listing down. Returns an empty
// slice (not nil) when no styles exist.
func (r *Repo) List(ctx context.Context) ([]*domain.CustomTranslationStyle, error) {
	return r.list(ctx, nil)
}

// ListByLanguagePair returns active styles whose language direction matches
// exactly (tags are compared verbatim, "en" does not match "en-US").
func (r *Repo) ListByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, error) {
	return r.list(ctx, sq.Eq{
		"source_language": sourceLang,
		"target_language": targetLang,
		"is_active":       true,
	})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]*domain.CustomTranslationStyle, error) {
	builder := psql.Select(styleColumns...).
		From(stylesTable).
		OrderBy("created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}
	defer rows.Close()

	result := []*domain.CustomTranslationStyle{}
	for rows.Next() {
		style, err := scanStyle(rows)
		if err != nil {
			// Fail-soft: skip the corrupt row, keep the rest of the listing.
			r.log.WarnContext(ctx, "skipping undecodable style row", "error", err)
			continue
		}
		result = append(result, style)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning and JSON helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	out := styleColumns[0]
	for _, c := range styleColumns[1:] {
		out += ", " + c
	}
	return out
}

// scanStyle scans one styles row (in styleColumns order) into the aggregate.
func scanStyle(row pgx.Row) (*domain.CustomTranslationStyle, error) {
	var (
		style       domain.CustomTranslationStyle
		description pgtype.Text
		pairs       []byte
		conflicts   []byte
		stats       []byte
	)

	err := row.Scan(
		&style.ID, &style.Name, &description,
		&style.SourceLanguage, &style.TargetLanguage,
		&pairs, &conflicts, &stats,
		&style.IsActive, &style.CreatedAt, &style.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		style.Description = &description.String
	}

	if err := json.Unmarshal(pairs, &style.TranslationPairs); err != nil {
		return nil, fmt.Errorf("decode pairs: %w", err)
	}
	if err := json.Unmarshal(conflicts, &style.Conflicts); err != nil {
		return nil, fmt.Errorf("decode conflicts: %w", err)
	}
	if err := json.Unmarshal(stats, &style.Statistics); err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}

	if style.TranslationPairs == nil {
		style.TranslationPairs = []domain.TranslationPair{}
	}
	if style.Conflicts == nil {
		style.Conflicts = []domain.TranslationConflict{}
	}

	return &style, nil
}

func marshalCollections(style *domain.CustomTranslationStyle) (pairs, conflicts, stats []byte, err error) {
	if pairs, err = json.Marshal(style.TranslationPairs); err != nil {
		return nil, nil, nil, fmt.Errorf("encode pairs: %w", err)
	}
	if conflicts, err = json.Marshal(style.Conflicts); err != nil {
		return nil, nil, nil, fmt.Errorf("encode conflicts: %w", err)
	}
	if stats, err = json.Marshal(style.Statistics); err != nil {
		return nil, nil, nil, fmt.Errorf("encode statistics: %w", err)
	}
	return pairs, conflicts, stats, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
