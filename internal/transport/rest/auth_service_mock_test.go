package rest

import (
	"context"
	"sync"

	authsvc "github.com/heartmarshall/learning-log/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	LoginFunc    func(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error)
	LogoutFunc   func(ctx context.Context, token string) error

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input authsvc.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input authsvc.LoginInput
		}
		Logout []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
	lockLogout   sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input authsvc.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input authsvc.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context, token string) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, token)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
