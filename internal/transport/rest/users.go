package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/learning-log/internal/config"
	"github.com/heartmarshall/learning-log/internal/domain"
	authsvc "github.com/heartmarshall/learning-log/internal/service/auth"
	"github.com/heartmarshall/learning-log/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error)
	Logout(ctx context.Context, token string) error
}

const badCredentials = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// AuthHandler serves the account pages and owns the session cookie.
type AuthHandler struct {
	svc          authService
	cookieName   string
	cookieSecure bool
	log          *slog.Logger
	now          func() time.Time
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.SecureCookie(),
		log:          logger.With("handler", "auth"),
		now:          time.Now,
	}
}

func registerForm(username string) *formView {
	return newForm("register", "/users/register",
		fieldView{Name: "username", Label: "Username", Widget: "text", Attrs: map[string]string{"maxlength": "150"}, Value: username},
		fieldView{Name: "password", Label: "Password", Widget: "password"},
		fieldView{Name: "password_confirm", Label: "Password confirmation", Widget: "password"},
	)
}

func loginForm(username, next string) *formView {
	return newForm("login", "/users/login",
		fieldView{Name: "username", Label: "Username", Widget: "text", Value: username},
		fieldView{Name: "password", Label: "Password", Widget: "password"},
		fieldView{Name: "next", Widget: "hidden", Value: next},
	)
}

// RegisterForm handles GET /users/register.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, registerForm(""))
}

// Register handles POST /users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	username := r.PostForm.Get("username")

	result, err := h.svc.Register(r.Context(), authsvc.RegisterInput{
		Username:        username,
		Password:        r.PostForm.Get("password"),
		PasswordConfirm: r.PostForm.Get("password_confirm"),
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusOK, registerForm(username).withErrors(ve))
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.setSessionCookie(w, result)
	seeOther(w, r, "/")
}

// LoginForm handles GET /users/login.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, loginForm("", safeNext(r.URL.Query().Get("next"))))
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	username := r.PostForm.Get("username")
	next := safeNext(r.PostForm.Get("next"))

	result, err := h.svc.Login(r.Context(), authsvc.LoginInput{
		Username: username,
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			writeJSON(w, http.StatusOK, loginForm(username, next).withErrors(ve))
		case errors.Is(err, domain.ErrUnauthorized):
			form := loginForm(username, next)
			form.Errors = []string{badCredentials}
			writeJSON(w, http.StatusOK, form)
		default:
			h.handleError(w, r, err)
		}
		return
	}

	h.setSessionCookie(w, result)
	if next == "" {
		next = "/"
	}
	seeOther(w, r, next)
}

// Logout handles POST /users/logout. It always clears the cookie, even when
// the session was already gone.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.svc.Logout(r.Context(), cookie.Value); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	h.clearSessionCookie(w)
	seeOther(w, r, "/")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, result *authsvc.AuthResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    result.SessionToken,
		Path:     "/",
		Expires:  result.ExpiresAt,
		MaxAge:   int(result.ExpiresAt.Sub(h.now()).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// safeNext returns next if it is a local absolute path, and "" otherwise.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return next
}
