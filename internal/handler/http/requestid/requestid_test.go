package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"news-classify/internal/handler/http/requestid"
)

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := requestid.WithRequestID(context.Background(), "req-abc123")
	assert.Equal(t, "req-abc123", requestid.FromContext(ctx))
}

func TestMiddleware_GeneratesUUIDWhenAbsent(t *testing.T) {
	t.Parallel()
	var fromCtx string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/", nil))

	assert.NotEmpty(t, fromCtx)
	// 生成されるIDはUUID v4
	_, err := uuid.Parse(fromCtx)
	assert.NoError(t, err)
	assert.Equal(t, fromCtx, rec.Header().Get(requestid.Header))
}

func TestMiddleware_PropagatesClientID(t *testing.T) {
	t.Parallel()
	var fromCtx string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/news/42", nil)
	req.Header.Set(requestid.Header, "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", fromCtx)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(requestid.Header))
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	t.Parallel()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news/", nil))
		id := rec.Header().Get(requestid.Header)
		assert.False(t, seen[id], "request ID %q reused", id)
		seen[id] = true
	}
}

func TestMiddleware_HeaderSetBeforeHandlerWrites(t *testing.T) {
	t.Parallel()
	// ハンドラがエラー応答を書いてもIDヘッダーは残る
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "news classification not found", http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/9999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}
