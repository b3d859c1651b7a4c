package news

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"news-classify/internal/common/pagination"
	"news-classify/internal/handler/http/requestid"
	"news-classify/internal/handler/http/respond"
	"news-classify/internal/observability/logging"
	newsUC "news-classify/internal/usecase/news"
)

type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 分類レコード一覧取得
// @Summary      分類レコード一覧取得（ページネーション対応）
// @Description  登録されている分類レコードを取得します。skip/limitパラメータでページ単位の取得、labelパラメータで絞り込みができます。
// @Tags         news-classification
// @Produce      json
// @Param        skip   query    int     false  "スキップ件数" default(0) minimum(0)
// @Param        limit  query    int     false  "取得件数" default(100) minimum(1) maximum(1000)
// @Param        label  query    string  false  "ラベルでフィルタ（完全一致）"
// @Success      200 {array} DTO "分類レコード一覧"
// @Header       200 {integer} X-Total-Count "フィルタ適用後の総件数"
// @Header       200 {integer} X-Total-Pages "現在のlimitでの総ページ数"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/ [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	label := r.URL.Query().Get("label")

	records, err := h.Svc.List(ctx, newsUC.ListParams{
		Skip:  params.Skip,
		Limit: params.Limit,
		Label: label,
	})
	if err != nil {
		logger.Error("Failed to list records",
			"error", err.Error(),
			"skip", params.Skip,
			"limit", params.Limit,
			"request_id", reqID)
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]DTO, 0, len(records))
	for _, record := range records {
		out = append(out, toDTO(record))
	}

	// ページネーション用メタデータはヘッダーで返す（ボディは配列のまま）
	total, err := h.Svc.Count(ctx, label)
	if err != nil {
		logger.Error("Failed to count records",
			"error", err.Error(),
			"label", label,
			"request_id", reqID)
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	w.Header().Set("X-Total-Pages", strconv.Itoa(pagination.TotalPages(total, params.Limit)))

	logger.Info("Record list request",
		"skip", params.Skip,
		"limit", params.Limit,
		"label", label,
		"returned_count", len(out),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, out)
}
