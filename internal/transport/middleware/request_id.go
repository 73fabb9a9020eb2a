package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client-supplied ids before they reach the logs.
const maxRequestIDLen = 128

// RequestID reuses the incoming X-Request-Id or generates a new one, stores
// it in the request context and echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
