package rest

import (
	"net/http"

	"github.com/heartmarshall/learning-log/internal/transport/middleware"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/users/login"

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Journal *JournalHandler
	Auth    *AuthHandler
	Health  *HealthHandler
	Metrics http.Handler
	Guard   *middleware.SessionGuard
	Limiter *middleware.RateLimiter
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	j, g := d.Journal, d.Guard

	mux.HandleFunc("GET /{$}", j.Home)

	mux.Handle("GET /topics", g.Require(j.ListTopics))
	mux.Handle("GET /topics/new", g.Require(j.NewTopicForm))
	mux.Handle("POST /topics/new", g.Require(j.CreateTopic))
	mux.Handle("GET /topics/{topic_id}", g.Require(j.TopicDetail))
	mux.Handle("GET /topics/{topic_id}/edit", g.Require(j.EditTopicForm))
	mux.Handle("POST /topics/{topic_id}/edit", g.Require(j.UpdateTopic))
	mux.Handle("GET /topics/{topic_id}/entries/new", g.Require(j.NewEntryForm))
	mux.Handle("POST /topics/{topic_id}/entries/new", g.Require(j.CreateEntry))
	mux.Handle("GET /entries/{entry_id}/edit", g.Require(j.EditEntryForm))
	mux.Handle("POST /entries/{entry_id}/edit", g.Require(j.UpdateEntry))

	mux.HandleFunc("GET /users/register", d.Auth.RegisterForm)
	mux.Handle("POST /users/register", d.Limiter.Limit(http.HandlerFunc(d.Auth.Register)))
	mux.HandleFunc("GET "+LoginPath, d.Auth.LoginForm)
	mux.Handle("POST "+LoginPath, d.Limiter.Limit(http.HandlerFunc(d.Auth.Login)))
	mux.HandleFunc("POST /users/logout", d.Auth.Logout)

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	return mux
}
