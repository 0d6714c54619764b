package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	bare := NewUserError("batch contains no rows", nil)
	assert.Equal(t, "batch contains no rows", bare.Error())

	wrapped := NewUserError("row 2: missing date", ErrInvalidRow)
	assert.Equal(t, "row 2: missing date: invalid statement row", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrInvalidRow)

	var userErr *UserError
	assert.True(t, errors.As(wrapped, &userErr))
	assert.Equal(t, "row 2: missing date", userErr.UserMessage)
}
