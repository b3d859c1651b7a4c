package news

import (
	"encoding/json"
	"net/http"

	"news-classify/internal/handler/http/pathutil"
	"news-classify/internal/handler/http/respond"
	newsUC "news-classify/internal/usecase/news"
)

type UpdateHandler struct{ Svc *newsUC.Service }

// ServeHTTP 分類レコード更新
// @Summary      分類レコード更新
// @Description  既存の分類レコードを部分更新します。省略されたフィールドは変更されません。
// @Tags         news-classification
// @Accept       json
// @Produce      json
// @Param        id path int true "レコードID"
// @Param        record body object true "更新するレコード情報"
// @Success      200 {object} DTO "更新後のレコード"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - record not found"
// @Failure      422 {string} string "Validation error - updated field would become empty"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Review *string `json:"review"`
		Label  *string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.Svc.Update(r.Context(), newsUC.UpdateInput{
		ID:     id,
		Review: req.Review,
		Label:  req.Label,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(record))
}
