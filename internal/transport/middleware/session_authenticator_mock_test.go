package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ sessionAuthenticator = &sessionAuthenticatorMock{}

type sessionAuthenticatorMock struct {
	AuthenticateFunc func(ctx context.Context, token string) (uuid.UUID, error)

	calls struct {
		Authenticate []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockAuthenticate sync.RWMutex
}

func (mock *sessionAuthenticatorMock) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.AuthenticateFunc == nil {
		panic("sessionAuthenticatorMock.AuthenticateFunc: method is nil but sessionAuthenticator.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, token)
}

func (mock *sessionAuthenticatorMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}
