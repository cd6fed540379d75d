package style

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/ingest"
)

var _ styleRepo = &styleRepoMock{}

type styleRepoMock struct {
	SaveFunc               func(ctx context.Context, style *domain.CustomTranslationStyle) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, params domain.StyleUpdateParams) (*domain.CustomTranslationStyle, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	ListFunc               func(ctx context.Context) ([]*domain.CustomTranslationStyle, error)
	ListByLanguagePairFunc func(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, error)

	calls struct {
		Save []struct {
			Style *domain.CustomTranslationStyle
		}
		GetByID []struct {
			ID uuid.UUID
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.StyleUpdateParams
		}
		Delete []struct {
			ID uuid.UUID
		}
		List               []struct{}
		ListByLanguagePair []struct {
			SourceLang string
			TargetLang string
		}
	}
	lock sync.RWMutex
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

func (mock *styleRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.StyleUpdateParams) (*domain.CustomTranslationStyle, error) {
	if mock.UpdateFunc == nil {
		panic("styleRepoMock.UpdateFunc: method is nil but styleRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.StyleUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *styleRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.StyleUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *styleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("styleRepoMock.DeleteFunc: method is nil but styleRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *styleRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *styleRepoMock) List(ctx context.Context) ([]*domain.CustomTranslationStyle, error) {
	if mock.ListFunc == nil {
		panic("styleRepoMock.ListFunc: method is nil but styleRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *styleRepoMock) ListCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *styleRepoMock) ListByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, error) {
	if mock.ListByLanguagePairFunc == nil {
		panic("styleRepoMock.ListByLanguagePairFunc: method is nil but styleRepo.ListByLanguagePair was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByLanguagePair = append(mock.calls.ListByLanguagePair, struct {
		SourceLang string
		TargetLang string
	}{SourceLang: sourceLang, TargetLang: targetLang})
	mock.lock.Unlock()
	return mock.ListByLanguagePairFunc(ctx, sourceLang, targetLang)
}

func (mock *styleRepoMock) ListByLanguagePairCalls() []struct {
	SourceLang string
	TargetLang string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByLanguagePair
}

var _ styleCache = &styleCacheMock{}

type styleCacheMock struct {
	GetStylesByLanguagePairFunc func(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, bool)
	SetStylesByLanguagePairFunc func(ctx context.Context, sourceLang, targetLang string, styles []*domain.CustomTranslationStyle)
	InvalidateLanguagePairFunc  func(ctx context.Context, sourceLang, targetLang string)

	calls struct {
		Get        []struct{ SourceLang, TargetLang string }
		Set        []struct{ SourceLang, TargetLang string }
		Invalidate []struct{ SourceLang, TargetLang string }
	}
	lock sync.RWMutex
}

func (mock *styleCacheMock) GetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, bool) {
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ SourceLang, TargetLang string }{sourceLang, targetLang})
	mock.lock.Unlock()
	if mock.GetStylesByLanguagePairFunc == nil {
		return nil, false
	}
	return mock.GetStylesByLanguagePairFunc(ctx, sourceLang, targetLang)
}

func (mock *styleCacheMock) SetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string, styles []*domain.CustomTranslationStyle) {
	mock.lock.Lock()
	mock.calls.Set = append(mock.calls.Set, struct{ SourceLang, TargetLang string }{sourceLang, targetLang})
	mock.lock.Unlock()
	if mock.SetStylesByLanguagePairFunc != nil {
		mock.SetStylesByLanguagePairFunc(ctx, sourceLang, targetLang, styles)
	}
}

func (mock *styleCacheMock) InvalidateLanguagePair(ctx context.Context, sourceLang, targetLang string) {
	mock.lock.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{ SourceLang, TargetLang string }{sourceLang, targetLang})
	mock.lock.Unlock()
	if mock.InvalidateLanguagePairFunc != nil {
		mock.InvalidateLanguagePairFunc(ctx, sourceLang, targetLang)
	}
}

func (mock *styleCacheMock) GetCalls() []struct{ SourceLang, TargetLang string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Get
}

func (mock *styleCacheMock) SetCalls() []struct{ SourceLang, TargetLang string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Set
}

func (mock *styleCacheMock) InvalidateCalls() []struct{ SourceLang, TargetLang string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Invalidate
}

var _ pipelineRunner = &pipelineRunnerMock{}

type pipelineRunnerMock struct {
	RunFunc func(ctx context.Context, sourceLang, targetLang string, sources, targets []ingest.Source) (ingest.Result, error)

	calls struct {
		Run []struct {
			SourceLang string
			TargetLang string
			Sources    []ingest.Source
			Targets    []ingest.Source
		}
	}
	lock sync.RWMutex
}

func (mock *pipelineRunnerMock) Run(ctx context.Context, sourceLang, targetLang string, sources, targets []ingest.Source) (ingest.Result, error) {
	if mock.RunFunc == nil {
		panic("pipelineRunnerMock.RunFunc: method is nil but pipelineRunner.Run was just called")
	}
	mock.lock.Lock()
	mock.calls.Run = append(mock.calls.Run, struct {
		SourceLang string
		TargetLang string
		Sources    []ingest.Source
		Targets    []ingest.Source
	}{SourceLang: sourceLang, TargetLang: targetLang, Sources: sources, Targets: targets})
	mock.lock.Unlock()
	return mock.RunFunc(ctx, sourceLang, targetLang, sources, targets)
}

func (mock *pipelineRunnerMock) RunCalls() []struct {
	SourceLang string
	TargetLang string
	Sources    []ingest.Source
	Targets    []ingest.Source
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Run
}
