package news

import (
	"net/http"

	httpmetrics "news-classify/internal/handler/http"
	"news-classify/internal/handler/http/respond"
	newsUC "news-classify/internal/usecase/news"
)

type StatsHandler struct{ Svc *newsUC.Service }

// ServeHTTP 統計サマリ取得
// @Summary      統計サマリ取得
// @Description  レコード総数とラベルごとの件数を返します
// @Tags         news-classification
// @Produce      json
// @Success      200 {object} StatsDTO "統計サマリ"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/stats/summary [get]
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	httpmetrics.UpdateNewsRecordsTotal(stats.TotalRecords)

	respond.JSON(w, http.StatusOK, StatsDTO{
		TotalRecords:      stats.TotalRecords,
		LabelDistribution: stats.LabelDistribution,
	})
}
