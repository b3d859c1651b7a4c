package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Skip  int // Number of items to skip from the start of the result set
	Limit int // Items per request
}

// ParseQueryParams parses pagination parameters from HTTP request query string.
// Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - skip: Offset into the result set (must be a non-negative integer)
//   - limit: Items per request (must be between 1 and config.MaxLimit)
//
// Returns an error if parameters are invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Skip:  0,
		Limit: config.DefaultLimit,
	}

	// Parse skip parameter
	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		skip, err := strconv.Atoi(skipStr)
		if err != nil || skip < 0 {
			return params, fmt.Errorf("invalid query parameter: skip must be a non-negative integer")
		}
		params.Skip = skip
	}

	// Parse limit parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
