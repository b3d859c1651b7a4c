package news

import (
	"net/http"

	"news-classify/internal/handler/http/pathutil"
	"news-classify/internal/handler/http/respond"
	newsUC "news-classify/internal/usecase/news"
)

type DeleteHandler struct{ Svc *newsUC.Service }

// ServeHTTP 分類レコード削除
// @Summary      分類レコード削除
// @Description  分類レコードを削除します
// @Tags         news-classification
// @Param        id path int true "レコードID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - record not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
