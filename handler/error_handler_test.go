package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractkit/extractor"
	"github.com/dmitrymomot/extractkit/handler"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewErrorHandler(t *testing.T) {
	handle := handler.NewErrorHandler(discardLogger())

	newCtx := func() (handler.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()
		return handler.NewContext(rec, req), rec
	}

	t.Run("validation error renders 422 JSON", func(t *testing.T) {
		ctx, rec := newCtx()

		verr := handler.NewValidationError()
		verr.Add("name", "Name is required")
		handle(ctx, verr)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, rec.Body.String(), "validation_error")
	})

	t.Run("http error renders its status", func(t *testing.T) {
		ctx, rec := newCtx()

		handle(ctx, handler.ErrUnauthorized)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejection without response renders its status", func(t *testing.T) {
		ctx, rec := newCtx()

		handle(ctx, &extractor.Rejection{
			Source: extractor.SourceQuery,
			Status: http.StatusBadRequest,
			Err:    errors.New("bad page"),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_request")
	})

	t.Run("rejection with configured response renders it unchanged", func(t *testing.T) {
		ctx, rec := newCtx()

		handle(ctx, &extractor.Rejection{
			Source:   extractor.SourceJSON,
			Status:   http.StatusUnprocessableEntity,
			Err:      errors.New("boom"),
			Response: testResponse{status: http.StatusTeapot, body: "custom"},
		})

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "custom", rec.Body.String())
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		ctx, rec := newCtx()

		handle(ctx, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		require.NotNil(t, handler.NewErrorHandler(nil))
	})
}
