package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validationf("bad input"), fiber.StatusBadRequest},
		{Unauthorized("no token"), fiber.StatusUnauthorized},
		{Forbidden("read only"), fiber.StatusForbidden},
		{NotFoundf("missing"), fiber.StatusNotFound},
		{Conflictf("duplicate"), fiber.StatusConflict},
		{Internal(errors.New("boom")), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status())
	}
}

func TestInternalHidesCauseFromMessage(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("listing institutes: %w", NotFoundf("institute x not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
}

func TestKindOfUntypedError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}
