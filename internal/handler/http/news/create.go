package news

import (
	"encoding/json"
	"net/http"

	"news-classify/internal/handler/http/respond"
	newsUC "news-classify/internal/usecase/news"
)

type CreateHandler struct{ Svc *newsUC.Service }

// ServeHTTP 分類レコード作成
// @Summary      分類レコード作成
// @Description  新しいニュース分類レコードを作成します
// @Tags         news-classification
// @Accept       json
// @Produce      json
// @Param        record body object true "レコード情報"
// @Success      201 {object} DTO "作成されたレコード"
// @Failure      400 {string} string "Bad request - malformed JSON body"
// @Failure      422 {string} string "Validation error - review or label missing"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/ [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Review string `json:"review"`
		Label  string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		Review: req.Review,
		Label:  req.Label,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(record))
}
