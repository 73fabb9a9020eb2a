package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
	topicsvc "github.com/heartmarshall/learning-log/internal/service/topic"
)

var _ topicService = &topicServiceMock{}

type topicServiceMock struct {
	ListTopicsFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error)
	GetTopicFunc       func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*domain.Topic, error)
	GetTopicDetailFunc func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*topicsvc.Detail, error)
	CreateTopicFunc    func(ctx context.Context, userID uuid.UUID, input topicsvc.CreateTopicInput) (*domain.Topic, error)
	UpdateTopicFunc    func(ctx context.Context, userID uuid.UUID, input topicsvc.UpdateTopicInput) (*domain.Topic, error)

	calls struct {
		ListTopics []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetTopic []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
		GetTopicDetail []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
		CreateTopic []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  topicsvc.CreateTopicInput
		}
		UpdateTopic []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  topicsvc.UpdateTopicInput
		}
	}
	lockListTopics     sync.RWMutex
	lockGetTopic       sync.RWMutex
	lockGetTopicDetail sync.RWMutex
	lockCreateTopic    sync.RWMutex
	lockUpdateTopic    sync.RWMutex
}

func (mock *topicServiceMock) ListTopics(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("topicServiceMock.ListTopicsFunc: method is nil but topicService.ListTopics was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListTopics.Lock()
	mock.calls.ListTopics = append(mock.calls.ListTopics, callInfo)
	mock.lockListTopics.Unlock()
	return mock.ListTopicsFunc(ctx, userID)
}

func (mock *topicServiceMock) ListTopicsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListTopics.RLock()
	calls := mock.calls.ListTopics
	mock.lockListTopics.RUnlock()
	return calls
}

func (mock *topicServiceMock) GetTopic(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("topicServiceMock.GetTopicFunc: method is nil but topicService.GetTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
	}{Ctx: ctx, UserID: userID, TopicID: topicID}
	mock.lockGetTopic.Lock()
	mock.calls.GetTopic = append(mock.calls.GetTopic, callInfo)
	mock.lockGetTopic.Unlock()
	return mock.GetTopicFunc(ctx, userID, topicID)
}

func (mock *topicServiceMock) GetTopicCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockGetTopic.RLock()
	calls := mock.calls.GetTopic
	mock.lockGetTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) GetTopicDetail(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*topicsvc.Detail, error) {
	if mock.GetTopicDetailFunc == nil {
		panic("topicServiceMock.GetTopicDetailFunc: method is nil but topicService.GetTopicDetail was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
	}{Ctx: ctx, UserID: userID, TopicID: topicID}
	mock.lockGetTopicDetail.Lock()
	mock.calls.GetTopicDetail = append(mock.calls.GetTopicDetail, callInfo)
	mock.lockGetTopicDetail.Unlock()
	return mock.GetTopicDetailFunc(ctx, userID, topicID)
}

func (mock *topicServiceMock) GetTopicDetailCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockGetTopicDetail.RLock()
	calls := mock.calls.GetTopicDetail
	mock.lockGetTopicDetail.RUnlock()
	return calls
}

func (mock *topicServiceMock) CreateTopic(ctx context.Context, userID uuid.UUID, input topicsvc.CreateTopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("topicServiceMock.CreateTopicFunc: method is nil but topicService.CreateTopic was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  topicsvc.CreateTopicInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockCreateTopic.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, callInfo)
	mock.lockCreateTopic.Unlock()
	return mock.CreateTopicFunc(ctx, userID, input)
}

func (mock *topicServiceMock) CreateTopicCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  topicsvc.CreateTopicInput
} {
	mock.lockCreateTopic.RLock()
	calls := mock.calls.CreateTopic
	mock.lockCreateTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) UpdateTopic(ctx context.Context, userID uuid.UUID, input topicsvc.UpdateTopicInput) (*domain.Topic, error) {
	if mock.UpdateTopicFunc == nil {
		panic("topicServiceMock.UpdateTopicFunc: method is nil but topicService.UpdateTopic was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  topicsvc.UpdateTopicInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockUpdateTopic.Lock()
	mock.calls.UpdateTopic = append(mock.calls.UpdateTopic, callInfo)
	mock.lockUpdateTopic.Unlock()
	return mock.UpdateTopicFunc(ctx, userID, input)
}

func (mock *topicServiceMock) UpdateTopicCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  topicsvc.UpdateTopicInput
} {
	mock.lockUpdateTopic.RLock()
	calls := mock.calls.UpdateTopic
	mock.lockUpdateTopic.RUnlock()
	return calls
}
