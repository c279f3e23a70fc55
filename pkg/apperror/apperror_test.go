package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"leave-tracking/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	err := apperror.NotFound("leave request %s not found", "abc")

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.False(t, errors.Is(err, apperror.ErrForbidden))
	assert.Equal(t, "leave request abc not found", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, errors.Is(wrapped, apperror.ErrNotFound))
}

func TestFrom(t *testing.T) {
	t.Run("keeps app errors", func(t *testing.T) {
		src := apperror.InvalidState("leave request is already approved")
		got := apperror.From(fmt.Errorf("wrapped: %w", src))
		assert.Same(t, src, got)
		assert.Equal(t, http.StatusConflict, got.HTTPStatus)
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := apperror.From(cause)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
		assert.ErrorIs(t, got, cause)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, apperror.From(nil))
	})
}

func TestWithDetailsCopies(t *testing.T) {
	base := apperror.Validation("bad payload")
	detailed := base.WithDetails([]string{"days"})

	assert.Nil(t, base.Details)
	assert.Equal(t, []string{"days"}, detailed.Details)
	assert.ErrorIs(t, detailed, apperror.ErrInvalidInput)
}
