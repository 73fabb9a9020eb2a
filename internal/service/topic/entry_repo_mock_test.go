package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]domain.Entry, error)

	calls struct {
		ListByTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockListByTopic sync.RWMutex
}

func (mock *entryRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Entry, error) {
	if mock.ListByTopicFunc == nil {
		panic("entryRepoMock.ListByTopicFunc: method is nil but entryRepo.ListByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, callInfo)
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, topicID)
}

func (mock *entryRepoMock) ListByTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}
