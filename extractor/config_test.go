package extractor_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractkit/extractor"
)

func TestConfigFromContext(t *testing.T) {
	t.Run("absent config reports not found", func(t *testing.T) {
		cfg, ok := extractor.ConfigFromContext[extractor.JSONConfig](context.Background())
		assert.False(t, ok)
		assert.Equal(t, extractor.JSONConfig{}, cfg)
	})

	t.Run("stored config is returned", func(t *testing.T) {
		ctx := extractor.WithConfig(context.Background(), extractor.JSONConfig{MaxBodyBytes: 42})

		cfg, ok := extractor.ConfigFromContext[extractor.JSONConfig](ctx)
		require.True(t, ok)
		assert.Equal(t, int64(42), cfg.MaxBodyBytes)
	})

	t.Run("configs of different types do not collide", func(t *testing.T) {
		ctx := extractor.WithConfig(context.Background(), extractor.JSONConfig{MaxBodyBytes: 42})
		ctx = extractor.WithConfig(ctx, extractor.QueryConfig{})

		jsonCfg, ok := extractor.ConfigFromContext[extractor.JSONConfig](ctx)
		require.True(t, ok)
		assert.Equal(t, int64(42), jsonCfg.MaxBodyBytes)

		_, ok = extractor.ConfigFromContext[extractor.FormConfig](ctx)
		assert.False(t, ok)
	})
}

func TestProvide(t *testing.T) {
	t.Run("middleware makes config available to the extractor", func(t *testing.T) {
		type payload struct {
			Name string `json:"name"`
		}

		r := chi.NewRouter()
		r.With(extractor.Provide(extractor.JSONConfig{AllowUnknownFields: true})).
			Post("/", func(w http.ResponseWriter, req *http.Request) {
				var p payload
				if err := extractor.JSON()(req, &p); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(p.Name))
			})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"ok","extra":true}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("duplicate config on one route fails with 500", func(t *testing.T) {
		r := chi.NewRouter()
		r.With(
			extractor.Provide(extractor.JSONConfig{}),
			extractor.Provide(extractor.JSONConfig{}),
		).Post("/", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "already provided")
		assert.Contains(t, rec.Body.String(), "JSONConfig")
	})

	t.Run("different config types on one route are fine", func(t *testing.T) {
		r := chi.NewRouter()
		r.With(
			extractor.Provide(extractor.JSONConfig{}),
			extractor.Provide(extractor.QueryConfig{}),
		).Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("subtree config applies to nested routes", func(t *testing.T) {
		r := chi.NewRouter()
		r.Route("/api", func(r chi.Router) {
			r.Use(extractor.Provide(extractor.QueryConfig{}))
			r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
				_, ok := extractor.ConfigFromContext[extractor.QueryConfig](req.Context())
				assert.True(t, ok)
				w.WriteHeader(http.StatusOK)
			})
		})

		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
