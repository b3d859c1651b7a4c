package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout enforces a per-request deadline. Requests that exceed it receive
// 504 Gateway Timeout with a JSON body, and the request context is cancelled
// so slow repository queries and search aggregations can abort early.
//
// The handler goroutine may still be running when the deadline fires, so
// writes are funnelled through deadlineWriter: whichever side writes first
// wins and late writes are dropped.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			dw := &deadlineWriter{inner: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				// 期限超過。ハンドラが未応答なら504を返す
				dw.mu.Lock()
				dw.expired = true
				if !dw.wrote {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = w.Write([]byte(`{"error":"request timeout"}`))
				}
				dw.mu.Unlock()
			}
		})
	}
}

// deadlineWriter drops handler writes that arrive after the timeout
// response has already been sent.
type deadlineWriter struct {
	inner   http.ResponseWriter
	mu      sync.Mutex
	expired bool
	wrote   bool
}

func (w *deadlineWriter) Header() http.Header { return w.inner.Header() }

func (w *deadlineWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired || w.wrote {
		return
	}
	w.wrote = true
	w.inner.WriteHeader(code)
}

func (w *deadlineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !w.wrote {
		w.wrote = true
		w.inner.WriteHeader(http.StatusOK)
	}
	return w.inner.Write(p)
}

// Unwrap supports http.ResponseController.
func (w *deadlineWriter) Unwrap() http.ResponseWriter { return w.inner }
