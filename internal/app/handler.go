package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	"github.com/heartmarshall/learning-log/internal/adapter/postgres/audit"
	"github.com/heartmarshall/learning-log/internal/adapter/postgres/entry"
	"github.com/heartmarshall/learning-log/internal/adapter/postgres/topic"
	"github.com/heartmarshall/learning-log/internal/adapter/postgres/user"
	"github.com/heartmarshall/learning-log/internal/auth"
	"github.com/heartmarshall/learning-log/internal/config"
	"github.com/heartmarshall/learning-log/internal/domain"
	authsvc "github.com/heartmarshall/learning-log/internal/service/auth"
	entrysvc "github.com/heartmarshall/learning-log/internal/service/entry"
	topicsvc "github.com/heartmarshall/learning-log/internal/service/topic"
	"github.com/heartmarshall/learning-log/internal/transport/middleware"
	"github.com/heartmarshall/learning-log/internal/transport/rest"
)

// SessionStore is implemented by the Postgres session repo and the Redis
// session store.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// Deps are the runtime resources NewHandler wires together.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       postgres.DB
	Sessions SessionStore
	Checks   []rest.Check
	Registry *prometheus.Registry
	Limiter  *middleware.RateLimiter
}

// NewHandler builds repositories, services and transport, and returns the
// fully wrapped HTTP handler.
func NewHandler(d Deps) http.Handler {
	cfg, logger := d.Config, d.Logger

	// Repositories
	userRepo := user.New(d.DB)
	topicRepo := topic.New(d.DB)
	entryRepo := entry.New(d.DB)
	auditRepo := audit.New(d.DB)
	txm := postgres.NewTxManager(d.DB)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.SessionSecret, cfg.Auth.Issuer)
	authService := authsvc.NewService(logger, userRepo, d.Sessions, jwtManager, cfg.Auth)
	topicService := topicsvc.NewService(logger, topicRepo, entryRepo, auditRepo, txm)
	entryService := entrysvc.NewService(logger, entryRepo, topicRepo, auditRepo, txm)

	// Transport
	guard := middleware.NewSessionGuard(authService, cfg.Auth.CookieName, rest.LoginPath, logger)
	metrics := middleware.NewMetrics(d.Registry)

	mux := rest.NewRouter(rest.RouterDeps{
		Journal: rest.NewJournalHandler(topicService, entryService, logger),
		Auth:    rest.NewAuthHandler(authService, cfg.Auth, logger),
		Health:  rest.NewHealthHandler(BuildVersion(), d.Checks...),
		Metrics: promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}),
		Guard:   guard,
		Limiter: d.Limiter,
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.SameOrigin,
		metrics.Middleware,
	)(mux)
}
