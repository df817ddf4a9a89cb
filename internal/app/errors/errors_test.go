package errors

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseCodeError_Unwrap(t *testing.T) {
	err := NewWithCode(ErrInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired)

	var codeErr ResponseCodeError
	assert.True(t, errors.As(err, &codeErr))
	assert.Equal(t, http.StatusPaymentRequired, codeErr.Code())
	assert.Equal(t, "Insufficient balance", codeErr.Msg())
	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.Equal(t, "insufficient balance", err.Error())
}

func TestResponseCodeError_DefaultCode(t *testing.T) {
	err := New(errors.New("boom"), "create account")

	var codeErr ResponseCodeError
	assert.True(t, errors.As(err, &codeErr))
	assert.Equal(t, http.StatusInternalServerError, codeErr.Code())
}

func TestResponseCodeError_NilCause(t *testing.T) {
	err := NewWithCode(nil, "Login and password are required", http.StatusBadRequest)
	assert.Equal(t, "Login and password are required", err.Error())
}

func TestNewStoreFailure(t *testing.T) {
	err := NewStoreFailure("get account", sql.ErrConnDone)

	assert.True(t, errors.Is(err, ErrStoreFailure))
	assert.True(t, errors.Is(err, sql.ErrConnDone))
	assert.False(t, errors.Is(err, ErrAccountNotFound))
	assert.Contains(t, err.Error(), "get account")
}
