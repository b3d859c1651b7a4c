package news

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	httpmetrics "news-classify/internal/handler/http"
	"news-classify/internal/handler/http/respond"
	searchUC "news-classify/internal/usecase/search"
)

// minQueryLength は検索クエリの最小文字数
const minQueryLength = 3

type SearchHandler struct{ Svc *searchUC.Service }

// ServeHTTP 分類レコード検索
// @Summary      分類レコード検索
// @Description  転置インデックスを使ってレコード本文を検索し、関連度順に返します
// @Tags         news-classification
// @Produce      json
// @Param        q      query string true  "検索クエリ（3文字以上）"
// @Param        limit  query int    false "最大取得件数" default(10)
// @Success      200 {array} DTO "検索結果（関連度順）"
// @Failure      400 {string} string "Bad request - query too short or missing"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/search/ [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if len(q) < minQueryLength {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("q query param is required and must be at least 3 characters"))
		return
	}

	limit := searchUC.DefaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	start := time.Now()
	results, err := h.Svc.Search(r.Context(), q, limit)
	httpmetrics.RecordSearchQuery(err == nil)
	httpmetrics.RecordDBQuery("search", time.Since(start))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(results))
	for _, record := range results {
		out = append(out, toDTO(record))
	}
	respond.JSON(w, http.StatusOK, out)
}
