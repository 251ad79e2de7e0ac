package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewConflictError("register", "dup"))

	assert.Equal(t, ErrTypeConflict, ErrorTypeOf(wrapped))
	assert.Equal(t, ErrTypeInternal, ErrorTypeOf(errors.New("boom")))
	assert.Equal(t, ErrTypeNotFound, ErrorTypeOf(NewNotFoundError("get", "x")))
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError("save", "falhou", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestUser_PasswordRoundTrip(t *testing.T) {
	u := &User{Interactive: true}
	assert.Error(t, u.HashPassword("123"))
	assert.NoError(t, u.HashPassword("segredo123"))
	assert.NotEqual(t, "segredo123", u.PasswordHash)

	assert.NoError(t, u.ValidatePassword("segredo123"))
	assert.Error(t, u.ValidatePassword("errada"))
}

func TestUser_NonInteractiveCannotAuthenticate(t *testing.T) {
	u := &User{Interactive: true}
	assert.NoError(t, u.HashPassword("segredo123"))
	u.Interactive = false

	assert.Error(t, u.ValidatePassword("segredo123"))
	assert.Error(t, (&User{}).ValidatePassword(""))
}
