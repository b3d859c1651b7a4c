package news

import (
	"net/http"

	"news-classify/internal/handler/http/pathutil"
	"news-classify/internal/handler/http/respond"
	newsUC "news-classify/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP 分類レコード取得
// @Summary      分類レコード取得
// @Description  指定されたIDの分類レコードを取得します
// @Tags         news-classification
// @Produce      json
// @Param        id path int true "レコードID"
// @Success      200 {object} DTO "レコード詳細"
// @Failure      400 {string} string "Bad request - invalid record ID"
// @Failure      404 {string} string "Not found - record not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(record))
}
