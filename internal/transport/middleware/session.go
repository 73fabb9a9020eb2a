package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
	"github.com/heartmarshall/learning-log/pkg/ctxutil"
)

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// UserHandler handles a request on behalf of an authenticated user.
type UserHandler func(w http.ResponseWriter, r *http.Request, userID uuid.UUID)

// SessionGuard resolves the session cookie into a user id and hands it to
// the wrapped handler. Requests without a valid session are redirected to the
// login page with the original path in ?next=.
type SessionGuard struct {
	auth       sessionAuthenticator
	cookieName string
	loginPath  string
	log        *slog.Logger
}

// NewSessionGuard creates a guard reading the named cookie.
func NewSessionGuard(auth sessionAuthenticator, cookieName, loginPath string, logger *slog.Logger) *SessionGuard {
	return &SessionGuard{
		auth:       auth,
		cookieName: cookieName,
		loginPath:  loginPath,
		log:        logger,
	}
}

// Require wraps h so that it only runs for an authenticated session.
func (g *SessionGuard) Require(h UserHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(g.cookieName)
		if err != nil || cookie.Value == "" {
			g.redirectToLogin(w, r)
			return
		}

		userID, err := g.auth.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				g.clearCookie(w)
				g.redirectToLogin(w, r)
				return
			}
			g.log.ErrorContext(r.Context(), "session lookup failed",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		h(w, r, userID)
	})
}

func (g *SessionGuard) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := g.loginPath + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
	http.Redirect(w, r, target, http.StatusFound)
}

// clearCookie removes a cookie that no longer names a live session.
func (g *SessionGuard) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
