package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
	entrysvc "github.com/heartmarshall/learning-log/internal/service/entry"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	GetEntryFunc    func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*entrysvc.Detail, error)
	CreateEntryFunc func(ctx context.Context, userID uuid.UUID, input entrysvc.CreateEntryInput) (*domain.Entry, error)
	UpdateEntryFunc func(ctx context.Context, userID uuid.UUID, input entrysvc.UpdateEntryInput) (*entrysvc.Detail, error)

	calls struct {
		GetEntry []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		CreateEntry []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  entrysvc.CreateEntryInput
		}
		UpdateEntry []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  entrysvc.UpdateEntryInput
		}
	}
	lockGetEntry    sync.RWMutex
	lockCreateEntry sync.RWMutex
	lockUpdateEntry sync.RWMutex
}

func (mock *entryServiceMock) GetEntry(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*entrysvc.Detail, error) {
	if mock.GetEntryFunc == nil {
		panic("entryServiceMock.GetEntryFunc: method is nil but entryService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, userID, entryID)
}

func (mock *entryServiceMock) GetEntryCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) CreateEntry(ctx context.Context, userID uuid.UUID, input entrysvc.CreateEntryInput) (*domain.Entry, error) {
	if mock.CreateEntryFunc == nil {
		panic("entryServiceMock.CreateEntryFunc: method is nil but entryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  entrysvc.CreateEntryInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, userID, input)
}

func (mock *entryServiceMock) CreateEntryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  entrysvc.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) UpdateEntry(ctx context.Context, userID uuid.UUID, input entrysvc.UpdateEntryInput) (*entrysvc.Detail, error) {
	if mock.UpdateEntryFunc == nil {
		panic("entryServiceMock.UpdateEntryFunc: method is nil but entryService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  entrysvc.UpdateEntryInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, userID, input)
}

func (mock *entryServiceMock) UpdateEntryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  entrysvc.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}
