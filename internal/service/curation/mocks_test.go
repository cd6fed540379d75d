package curation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

var _ styleRepo = &styleRepoMock{}

type styleRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error)
	SaveFunc    func(ctx context.Context, style *domain.CustomTranslationStyle) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		Save []struct {
			Style *domain.CustomTranslationStyle
		}
	}
	lock sync.RWMutex
}

func (mock *styleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error) {
	if mock.GetByIDFunc == nil {
		panic("styleRepoMock.GetByIDFunc: method is nil but styleRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *styleRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *styleRepoMock) Save(ctx context.Context, style *domain.CustomTranslationStyle) error {
	if mock.SaveFunc == nil {
		panic("styleRepoMock.SaveFunc: method is nil but styleRepo.Save was just called")
	}
	mock.lock.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Style *domain.CustomTranslationStyle
	}{Style: style})
	mock.lock.Unlock()
	return mock.SaveFunc(ctx, style)
}

func (mock *styleRepoMock) SaveCalls() []struct {
	Style *domain.CustomTranslationStyle
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Save
}

var _ styleCache = &styleCacheMock{}

type styleCacheMock struct {
	InvalidateLanguagePairFunc func(ctx context.Context, sourceLang, targetLang string)

	calls struct {
		Invalidate []struct{ SourceLang, TargetLang string }
	}
	lock sync.RWMutex
}

func (mock *styleCacheMock) InvalidateLanguagePair(ctx context.Context, sourceLang, targetLang string) {
	mock.lock.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{ SourceLang, TargetLang string }{sourceLang, targetLang})
	mock.lock.Unlock()
	if mock.InvalidateLanguagePairFunc != nil {
		mock.InvalidateLanguagePairFunc(ctx, sourceLang, targetLang)
	}
}

func (mock *styleCacheMock) InvalidateCalls() []struct{ SourceLang, TargetLang string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Invalidate
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly; unit tests have no real
// transaction to attach to the context.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
