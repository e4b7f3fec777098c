package extractor_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractkit/extractor"
)

type signupRequest struct {
	Email string
}

var errEmailRequired = errors.New("email is required")

func (r *signupRequest) Validate() error {
	if r.Email == "" {
		return errEmailRequired
	}
	return nil
}

type plainRequest struct {
	Name string
}

func TestValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	t.Run("valid value passes", func(t *testing.T) {
		v := &signupRequest{Email: "a@b.c"}
		require.NoError(t, extractor.Validate()(req, v))
	})

	t.Run("invalid value returns its error", func(t *testing.T) {
		v := &signupRequest{}
		err := extractor.Validate()(req, v)
		assert.ErrorIs(t, err, errEmailRequired)
	})

	t.Run("non-validatable value is a no-op", func(t *testing.T) {
		v := &plainRequest{}
		require.NoError(t, extractor.Validate()(req, v))
	})
}
