package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"news-classify/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{
		DefaultLimit: 100,
		MaxLimit:     1000,
	}

	tests := []struct {
		name      string
		query     string
		want      pagination.Params
		wantError bool
	}{
		{
			name:  "valid parameters",
			query: "skip=20&limit=30",
			want: pagination.Params{
				Skip:  20,
				Limit: 30,
			},
			wantError: false,
		},
		{
			name:  "no parameters (use defaults)",
			query: "",
			want: pagination.Params{
				Skip:  0,
				Limit: 100,
			},
			wantError: false,
		},
		{
			name:  "only skip parameter",
			query: "skip=5",
			want: pagination.Params{
				Skip:  5,
				Limit: 100,
			},
			wantError: false,
		},
		{
			name:  "only limit parameter",
			query: "limit=50",
			want: pagination.Params{
				Skip:  0,
				Limit: 50,
			},
			wantError: false,
		},
		{
			name:  "skip zero is valid",
			query: "skip=0",
			want: pagination.Params{
				Skip:  0,
				Limit: 100,
			},
			wantError: false,
		},
		{
			name:  "limit at maximum",
			query: "limit=1000",
			want: pagination.Params{
				Skip:  0,
				Limit: 1000,
			},
			wantError: false,
		},
		{
			name:      "invalid skip (negative)",
			query:     "skip=-1",
			wantError: true,
		},
		{
			name:      "invalid skip (non-integer)",
			query:     "skip=abc",
			wantError: true,
		},
		{
			name:      "invalid limit (negative)",
			query:     "limit=-10",
			wantError: true,
		},
		{
			name:      "invalid limit (zero)",
			query:     "limit=0",
			wantError: true,
		},
		{
			name:      "invalid limit (exceeds maximum)",
			query:     "limit=1001",
			wantError: true,
		},
		{
			name:      "invalid limit (non-integer)",
			query:     "limit=xyz",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/news/?"+tt.query, nil)

			got, err := pagination.ParseQueryParams(req, config)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got params %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "25")
	t.Setenv("PAGINATION_MAX_LIMIT", "500")

	cfg := pagination.LoadFromEnv()
	if cfg.DefaultLimit != 25 {
		t.Errorf("DefaultLimit = %d, want 25", cfg.DefaultLimit)
	}
	if cfg.MaxLimit != 500 {
		t.Errorf("MaxLimit = %d, want 500", cfg.MaxLimit)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "")
	t.Setenv("PAGINATION_MAX_LIMIT", "not-a-number")

	cfg := pagination.LoadFromEnv()
	if cfg.DefaultLimit != 100 {
		t.Errorf("DefaultLimit = %d, want 100", cfg.DefaultLimit)
	}
	if cfg.MaxLimit != 1000 {
		t.Errorf("MaxLimit = %d, want 1000", cfg.MaxLimit)
	}
}
