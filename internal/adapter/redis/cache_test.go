package redis

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFromClient(db, 5*time.Minute, "test:", log), mock
}

func testStyles() []*domain.CustomTranslationStyle {
	return []*domain.CustomTranslationStyle{
		{
			ID:               uuid.MustParse("3f0e4d7a-5a68-4a8f-9a31-111111111111"),
			Name:             "Literary",
			SourceLanguage:   "en",
			TargetLanguage:   "es",
			TranslationPairs: []domain.TranslationPair{},
			Conflicts:        []domain.TranslationConflict{},
			IsActive:         true,
		},
	}
}

func TestCache_Get_Hit(t *testing.T) {
	cache, mock := newTestCache(t)

	styles := testStyles()
	payload, err := json.Marshal(styles)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	mock.ExpectGet("test:styles:en:es").SetVal(string(payload))

	got, ok := cache.GetStylesByLanguagePair(context.Background(), "en", "es")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Name != "Literary" {
		t.Errorf("unexpected cached styles: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCache_Get_Miss(t *testing.T) {
	cache, mock := newTestCache(t)

	mock.ExpectGet("test:styles:en:es").RedisNil()

	if _, ok := cache.GetStylesByLanguagePair(context.Background(), "en", "es"); ok {
		t.Error("expected cache miss")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCache_Get_CorruptPayloadIsMiss(t *testing.T) {
	cache, mock := newTestCache(t)

	mock.ExpectGet("test:styles:en:es").SetVal("{not json")

	if _, ok := cache.GetStylesByLanguagePair(context.Background(), "en", "es"); ok {
		t.Error("corrupt payload should be treated as a miss")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCache_Get_ErrorIsMiss(t *testing.T) {
	cache, mock := newTestCache(t)

	mock.ExpectGet("test:styles:en:es").SetErr(context.DeadlineExceeded)

	if _, ok := cache.GetStylesByLanguagePair(context.Background(), "en", "es"); ok {
		t.Error("redis error should be treated as a miss")
	}
}

func TestCache_Set(t *testing.T) {
	cache, mock := newTestCache(t)

	styles := testStyles()
	payload, err := json.Marshal(styles)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	mock.ExpectSet("test:styles:en:es", payload, 5*time.Minute).SetVal("OK")

	cache.SetStylesByLanguagePair(context.Background(), "en", "es", styles)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCache_Invalidate(t *testing.T) {
	cache, mock := newTestCache(t)

	mock.ExpectDel("test:styles:en:es").SetVal(1)

	cache.InvalidateLanguagePair(context.Background(), "en", "es")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCache_DefaultPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := NewFromClient(db, 0, "", log)

	mock.ExpectGet("styleforge:styles:de:fr").RedisNil()

	cache.GetStylesByLanguagePair(context.Background(), "de", "fr")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
