package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractkit/handler"
)

func renderJSON(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, req))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestJSON(t *testing.T) {
	t.Run("default status 200", func(t *testing.T) {
		rec, body := renderJSON(t, handler.JSON(map[string]string{"name": "john"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.Equal(t, map[string]any{"name": "john"}, body.Data)
	})

	t.Run("custom status", func(t *testing.T) {
		rec, _ := renderJSON(t, handler.JSON("created", handler.WithJSONStatus(http.StatusCreated)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("with meta", func(t *testing.T) {
		_, body := renderJSON(t, handler.JSON("data", handler.WithMeta(map[string]any{"page": 1.0})))
		assert.Equal(t, map[string]any{"page": 1.0}, body.Meta)
	})
}

func TestJSONError(t *testing.T) {
	t.Run("validation error carries details with 422", func(t *testing.T) {
		verr := handler.NewValidationError()
		verr.Add("email", "Email is required")
		verr.Add("email", "Email format is invalid")

		rec, body := renderJSON(t, handler.JSONError(verr))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"Email is required", "Email format is invalid"}, body.Error.Details["email"])
	})

	t.Run("http error carries its status", func(t *testing.T) {
		rec, body := renderJSON(t, handler.JSONError(handler.ErrForbidden))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "http.error.forbidden", body.Error.Code)
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		rec, body := renderJSON(t, handler.JSONError(assert.AnError))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_error", body.Error.Code)
	})
}
