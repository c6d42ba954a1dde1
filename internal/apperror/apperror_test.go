package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	assert.ErrorIs(t, Conflict("taken"), ErrConflict)
	assert.ErrorIs(t, NotFound("user"), ErrNotFound)
	assert.ErrorIs(t, Unauthorized("nope"), ErrUnauthorized)
	assert.ErrorIs(t, Validation("bad email"), ErrValidation)
	assert.ErrorIs(t, Internal("boom", errors.New("cause")), ErrInternal)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "user not found", NotFound("user").Error())
	assert.Equal(t, "taken", Conflict("taken").Error())
	assert.Equal(t, "conflict", (&AppError{Kind: ErrConflict}).Error())
}

func TestClassified(t *testing.T) {
	assert.True(t, Classified(Conflict("taken")))
	assert.True(t, Classified(NotFound("user")))
	assert.False(t, Classified(Internal("boom", nil)))
	assert.False(t, Classified(errors.New("random")))
}
