package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInputValidation_Success(t *testing.T) {
	// Create handler that should be reached
	reached := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with validation middleware
	middleware := InputValidation()
	wrappedHandler := middleware(handler)

	// Create test request with valid inputs
	req := httptest.NewRequest(http.MethodPost, "/news/", strings.NewReader("valid body"))
	rec := httptest.NewRecorder()

	// Execute request
	wrappedHandler.ServeHTTP(rec, req)

	// Verify handler was reached
	if !reached {
		t.Error("expected handler to be reached with valid inputs")
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestInputValidation_PathTooLong(t *testing.T) {
	// Create handler
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	// Wrap with validation middleware
	middleware := InputValidation()
	wrappedHandler := middleware(handler)

	// Create test request with oversized path (> 2KB)
	longPath := "/news/" + strings.Repeat("a", 2049)
	req := httptest.NewRequest(http.MethodGet, longPath, nil)
	rec := httptest.NewRecorder()

	// Execute request
	wrappedHandler.ServeHTTP(rec, req)

	// Verify response
	if rec.Code != http.StatusRequestURITooLong {
		t.Errorf("expected status 414, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "URI too long") {
		t.Errorf("expected error message about URI, got '%s'", body)
	}

	// Verify content type
	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got '%s'", contentType)
	}
}

func TestInputValidation_PathExactLimit(t *testing.T) {
	// Create handler
	reached := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with validation middleware
	middleware := InputValidation()
	wrappedHandler := middleware(handler)

	// Create test request with path exactly at limit (2KB)
	exactPath := "/" + strings.Repeat("a", 2047)
	req := httptest.NewRequest(http.MethodGet, exactPath, nil)
	rec := httptest.NewRecorder()

	// Execute request
	wrappedHandler.ServeHTTP(rec, req)

	// Verify handler was reached (exactly at limit should pass)
	if !reached {
		t.Error("expected handler to be reached with exact limit")
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestInputValidation_BodySizeLimit(t *testing.T) {
	// Create handler that reads body
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Try to read more than 10MB
		_, err := io.Copy(io.Discard, r.Body)
		if err == nil {
			t.Error("expected error when reading oversized body")
		}
		// Error will be handled by http.MaxBytesReader
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with validation middleware
	middleware := InputValidation()
	wrappedHandler := middleware(handler)

	// Create test request with oversized body (> 10MB)
	largeBody := bytes.NewReader(make([]byte, 11<<20)) // 11MB
	req := httptest.NewRequest(http.MethodPost, "/news/", largeBody)
	rec := httptest.NewRecorder()

	// Execute request
	wrappedHandler.ServeHTTP(rec, req)

	// Verify that body size limit was enforced
	// http.MaxBytesReader returns error when limit exceeded
}

func TestInputValidation_NormalBody(t *testing.T) {
	// Create handler that reads body
	bodyRead := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("unexpected error reading body: %v", err)
		}
		if string(body) == "test data" {
			bodyRead = true
		}
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with validation middleware
	middleware := InputValidation()
	wrappedHandler := middleware(handler)

	// Create test request with normal body
	req := httptest.NewRequest(http.MethodPost, "/news/", strings.NewReader("test data"))
	rec := httptest.NewRecorder()

	// Execute request
	wrappedHandler.ServeHTTP(rec, req)

	// Verify body was read successfully
	if !bodyRead {
		t.Error("expected body to be read successfully")
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
