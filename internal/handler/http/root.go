package http

import (
	"net/http"

	"news-classify/internal/handler/http/respond"
)

// RootHandler serves API metadata at the root path.
type RootHandler struct {
	Version string
}

// ServeHTTP returns a welcome message with pointers to the API documentation.
func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the News Classification API",
		"version": h.Version,
		"docs":    "/swagger/index.html",
	})
}
