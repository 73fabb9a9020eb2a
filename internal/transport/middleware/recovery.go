package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/learning-log/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged 500. It must sit inside
// RequestID so the log line carries the request id. When the handler had
// already started the response, the status cannot change and the body is
// left as is.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapStatus(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.Bool("response_started", sw.wroteHeader),
				)
				if !sw.wroteHeader {
					writeError(sw, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
