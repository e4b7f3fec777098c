package extractor_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractkit/extractor"
)

func TestPathChi(t *testing.T) {
	type profileRequest struct {
		UserID   int    `path:"id"`
		Username string `path:"username"`
	}

	serve := func(t *testing.T, target string, handle func(w http.ResponseWriter, req *http.Request)) *httptest.ResponseRecorder {
		t.Helper()
		r := chi.NewRouter()
		r.Get("/users/{id}/profile/{username}", handle)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("binds chi URL params", func(t *testing.T) {
		rec := serve(t, "/users/123/profile/john", func(w http.ResponseWriter, req *http.Request) {
			var result profileRequest
			err := extractor.PathChi()(req, &result)

			require.NoError(t, err)
			assert.Equal(t, 123, result.UserID)
			assert.Equal(t, "john", result.Username)
			w.WriteHeader(http.StatusOK)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("conversion failure is a 400 rejection", func(t *testing.T) {
		rec := serve(t, "/users/abc/profile/john", func(w http.ResponseWriter, req *http.Request) {
			var result profileRequest
			err := extractor.PathChi()(req, &result)

			require.Error(t, err)
			assert.ErrorIs(t, err, extractor.ErrInvalidPath)

			var rej *extractor.Rejection
			require.ErrorAs(t, err, &rej)
			assert.Equal(t, extractor.SourcePath, rej.Source)
			assert.Equal(t, http.StatusBadRequest, rej.HTTPStatus())
			w.WriteHeader(http.StatusBadRequest)
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPath(t *testing.T) {
	type request struct {
		ID string `path:"id"`
	}

	t.Run("custom param lookup", func(t *testing.T) {
		params := map[string]string{"id": "abc-123"}
		lookup := func(r *http.Request, name string) string { return params[name] }

		req := httptest.NewRequest(http.MethodGet, "/anything", nil)

		var result request
		err := extractor.Path(lookup)(req, &result)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", result.ID)
	})

	t.Run("missing param keeps zero value", func(t *testing.T) {
		lookup := func(r *http.Request, name string) string { return "" }

		req := httptest.NewRequest(http.MethodGet, "/anything", nil)

		var result request
		err := extractor.Path(lookup)(req, &result)

		require.NoError(t, err)
		assert.Empty(t, result.ID)
	})

	t.Run("nil lookup is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/anything", nil)

		var result request
		err := extractor.Path(nil)(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, extractor.ErrInvalidPath)
	})
}
