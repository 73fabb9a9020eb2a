package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/config"
	"github.com/heartmarshall/learning-log/internal/domain"
	"github.com/heartmarshall/learning-log/internal/transport/middleware"
)

//go:generate moq -out topic_service_mock_test.go -pkg rest . topicService
//go:generate moq -out entry_service_mock_test.go -pkg rest . entryService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService

const testCookie = "ll_session"

// cookieAuth treats the cookie value as the user id.
type cookieAuth struct{}

func (cookieAuth) Authenticate(_ context.Context, token string) (uuid.UUID, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

type testServer struct {
	topics  *topicServiceMock
	entries *entryServiceMock
	auth    *authServiceMock
	handler http.Handler
}

func newTestServer(t *testing.T, authBurst int) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s := &testServer{
		topics:  &topicServiceMock{},
		entries: &entryServiceMock{},
		auth:    &authServiceMock{},
	}

	limiter := middleware.NewRateLimiter(60, authBurst, time.Minute)
	t.Cleanup(limiter.Stop)

	s.handler = NewRouter(RouterDeps{
		Journal: NewJournalHandler(s.topics, s.entries, logger),
		Auth:    NewAuthHandler(s.auth, config.AuthConfig{CookieName: testCookie}, logger),
		Health:  NewHealthHandler("test"),
		Guard:   middleware.NewSessionGuard(cookieAuth{}, testCookie, LoginPath, logger),
		Limiter: limiter,
	})
	return s
}

func (s *testServer) get(path string, userID uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != uuid.Nil {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: userID.String()})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) post(path string, userID uuid.UUID, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.0.0.1:5555"
	if userID != uuid.Nil {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: userID.String()})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}
