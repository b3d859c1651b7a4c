// Package requestid tags every HTTP request with a unique ID so a record
// mutation, the index update it triggers, and the access log line can be
// correlated across the JSON logs.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the ID. Incoming values
// are propagated as-is; absent ones are minted as UUID v4.
const Header = "X-Request-ID"

type ctxKey struct{}

// FromContext returns the request ID, or "" when the middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware assigns the request ID and echoes it on the response header so
// API clients can quote it when reporting a failed call.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
