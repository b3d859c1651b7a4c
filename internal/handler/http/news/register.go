package news

import (
	"log/slog"
	"net/http"

	"news-classify/internal/common/pagination"
	newsUC "news-classify/internal/usecase/news"
	searchUC "news-classify/internal/usecase/search"
)

// Register registers all news classification HTTP handlers with the given mux.
// Exact patterns (search, stats, the collection root) take precedence over the
// ID-based subtree routes.
func Register(mux *http.ServeMux, svc *newsUC.Service, searchSvc *searchUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /news/{$}", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST   /news/{$}", CreateHandler{svc})
	mux.Handle("GET    /news/search/", SearchHandler{searchSvc})
	mux.Handle("GET    /news/stats/summary", StatsHandler{svc})

	mux.Handle("GET    /news/", GetHandler{svc})
	mux.Handle("PUT    /news/", UpdateHandler{svc})
	mux.Handle("DELETE /news/", DeleteHandler{svc})
}
