package entry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc     func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	UpdateTextFunc func(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Entry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateText []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Text string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdateText sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error) {
	if mock.UpdateTextFunc == nil {
		panic("entryRepoMock.UpdateTextFunc: method is nil but entryRepo.UpdateText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Text string
	}{Ctx: ctx, ID: id, Text: text}
	mock.lockUpdateText.Lock()
	mock.calls.UpdateText = append(mock.calls.UpdateText, callInfo)
	mock.lockUpdateText.Unlock()
	return mock.UpdateTextFunc(ctx, id, text)
}

func (mock *entryRepoMock) UpdateTextCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Text string
} {
	mock.lockUpdateText.RLock()
	calls := mock.calls.UpdateText
	mock.lockUpdateText.RUnlock()
	return calls
}
