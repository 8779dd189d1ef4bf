package connection

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNilError(Nil))
	assert.True(t, IsClosedError(ErrClosed))
	assert.True(t, IsTxFailedError(ErrTxFailed))

	assert.False(t, IsNilError(ErrClosed))
	assert.False(t, IsClosedError(Nil))
	assert.False(t, IsTxFailedError(nil))
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey("orders"))
	assert.ErrorIs(t, ValidateKey(""), ErrEmptyKey)
}

func TestErrorHelpersMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("get user: %w", Nil)
	assert.True(t, IsNilError(wrapped))
	assert.True(t, errors.Is(wrapped, Nil))

	assert.False(t, IsNilError(errors.New("rediskit: nil")))
}
