package responsewriter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"news-classify/internal/handler/http/responsewriter"
)

func TestWrap_DefaultsBeforeAnyWrite(t *testing.T) {
	t.Parallel()
	rec := responsewriter.Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rec.StatusCode())
	assert.Equal(t, 0, rec.BytesWritten())
}

func TestRecorder_CapturesStatusCodes(t *testing.T) {
	t.Parallel()
	// ハンドラ層が返すステータスの代表値
	for _, status := range []int{
		http.StatusOK,
		http.StatusCreated,
		http.StatusNoContent,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusUnprocessableEntity,
		http.StatusInternalServerError,
	} {
		inner := httptest.NewRecorder()
		rec := responsewriter.Wrap(inner)
		rec.WriteHeader(status)

		assert.Equal(t, status, rec.StatusCode())
		assert.Equal(t, status, inner.Code)
	}
}

func TestRecorder_FirstStatusWins(t *testing.T) {
	t.Parallel()
	inner := httptest.NewRecorder()
	rec := responsewriter.Wrap(inner)

	rec.WriteHeader(http.StatusNotFound)
	rec.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rec.StatusCode())
	assert.Equal(t, http.StatusNotFound, inner.Code)
}

func TestRecorder_ImplicitOKOnBodyWrite(t *testing.T) {
	t.Parallel()
	inner := httptest.NewRecorder()
	rec := responsewriter.Wrap(inner)

	_, err := rec.Write([]byte(`{"id":1,"label":"BUSINESS"}`))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.StatusCode())
	assert.Equal(t, http.StatusOK, inner.Code)
}

func TestRecorder_AccumulatesBodySize(t *testing.T) {
	t.Parallel()
	inner := httptest.NewRecorder()
	rec := responsewriter.Wrap(inner)

	rec.WriteHeader(http.StatusOK)
	_, _ = rec.Write([]byte(`[{"id":1},`))
	_, _ = rec.Write([]byte(`{"id":2}]`))

	assert.Equal(t, len(`[{"id":1},{"id":2}]`), rec.BytesWritten())
	assert.Equal(t, `[{"id":1},{"id":2}]`, inner.Body.String())
}

func TestRecorder_ExplicitStatusThenBody(t *testing.T) {
	t.Parallel()
	inner := httptest.NewRecorder()
	rec := responsewriter.Wrap(inner)

	rec.WriteHeader(http.StatusCreated)
	body := []byte(`{"id":7,"review":"Markets rally","label":"BUSINESS"}`)
	n, err := rec.Write(body)

	assert.NoError(t, err)
	assert.Equal(t, len(body), n)
	assert.Equal(t, http.StatusCreated, rec.StatusCode())
	assert.Equal(t, len(body), rec.BytesWritten())
}

func TestRecorder_Unwrap(t *testing.T) {
	t.Parallel()
	inner := httptest.NewRecorder()
	rec := responsewriter.Wrap(inner)

	assert.Equal(t, http.ResponseWriter(inner), rec.Unwrap())
}
