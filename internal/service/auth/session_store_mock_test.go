package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	CreateFunc        func(ctx context.Context, s *domain.Session) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Session
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteExpired sync.RWMutex
}

func (mock *sessionStoreMock) Create(ctx context.Context, s *domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionStoreMock.CreateFunc: method is nil but sessionStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Session
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionStoreMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionStoreMock.GetByIDFunc: method is nil but sessionStore.GetByID was just called")
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

func (mock *sessionStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionStoreMock) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionStoreMock.DeleteExpiredFunc: method is nil but sessionStore.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *sessionStoreMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
