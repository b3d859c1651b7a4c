package news

import (
	"errors"
	"net/http"

	"news-classify/internal/domain/entity"
	newsUC "news-classify/internal/usecase/news"
)

// statusFor maps use case errors to HTTP status codes.
// Not-found errors map to 404, invalid IDs to 400, field validation
// failures to 422, everything else to 500.
func statusFor(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.Is(err, newsUC.ErrNewsNotFound):
		return http.StatusNotFound
	case errors.Is(err, newsUC.ErrInvalidNewsID):
		return http.StatusBadRequest
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
