package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1,"label":"BUSINESS"}]`))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/", nil)
	Timeout(1 * time.Second)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "BUSINESS") {
		t.Errorf("expected record list body, got '%s'", rec.Body.String())
	}
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	// 遅いstats集計を模したハンドラ
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/stats/summary", nil)
	Timeout(50 * time.Millisecond)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("expected status 504, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "request timeout") {
		t.Errorf("expected timeout body, got '%s'", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got '%s'", ct)
	}
}

func TestTimeout_CancelsRequestContext(t *testing.T) {
	cancelled := make(chan struct{}, 1)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			cancelled <- struct{}{}
		case <-time.After(200 * time.Millisecond):
			w.WriteHeader(http.StatusOK)
		}
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/search/?q=economy", nil)
	Timeout(50 * time.Millisecond)(handler).ServeHTTP(rec, req)

	select {
	case <-cancelled:
	case <-time.After(300 * time.Millisecond):
		t.Error("expected request context to be cancelled")
	}
	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("expected status 504, got %d", rec.Code)
	}
}

func TestTimeout_SetsDeadlineOnContext(t *testing.T) {
	deadlines := make(chan time.Time, 1)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if d, ok := r.Context().Deadline(); ok {
			deadlines <- d
		}
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/42", nil)
	Timeout(1 * time.Second)(handler).ServeHTTP(rec, req)

	select {
	case d := <-deadlines:
		want := start.Add(1 * time.Second)
		if d.Before(want.Add(-100*time.Millisecond)) || d.After(want.Add(100*time.Millisecond)) {
			t.Errorf("expected deadline near %v, got %v", want, d)
		}
	default:
		t.Error("expected context to carry a deadline")
	}
}

func TestTimeout_PreservesRequestContextValues(t *testing.T) {
	type ctxKey string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v, _ := r.Context().Value(ctxKey("tenant")).(string); v != "newsroom" {
			t.Errorf("expected context value to survive wrapping, got '%s'", v)
		}
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.WithValue(context.Background(), ctxKey("tenant"), "newsroom")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/", nil).WithContext(ctx)
	Timeout(1 * time.Second)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestTimeout_LateWriteIsDropped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(50 * time.Millisecond)
		// 504送信後の書き込みは破棄される
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":7,"label":"SPORTS"}`))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/7", nil)
	Timeout(50 * time.Millisecond)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("expected status 504, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "SPORTS") {
		t.Errorf("late handler write leaked into response: '%s'", rec.Body.String())
	}
}

func TestTimeout_ImplicitStatusOnBodyWrite(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_records":0,"label_distribution":{}}`))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/stats/summary", nil)
	Timeout(1 * time.Second)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected implicit status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "total_records") {
		t.Errorf("unexpected body '%s'", rec.Body.String())
	}
}

func TestTimeout_ChunkedBodySurvives(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1},`))
		_, _ = w.Write([]byte(`{"id":2},`))
		_, _ = w.Write([]byte(`{"id":3}]`))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/", nil)
	Timeout(1 * time.Second)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != `[{"id":1},{"id":2},{"id":3}]` {
		t.Errorf("expected all chunks in order, got '%s'", rec.Body.String())
	}
}
