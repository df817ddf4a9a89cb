package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPhone        = errors.New("invalid phone")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrStoreFailure        = errors.New("store failure")

	ErrInvalidCode  = errors.New("invalid verification code")
	ErrCodeCooldown = errors.New("verification code requested too often")
	ErrUnauthorized = errors.New("unauthorized")
)

type ResponseCodeError struct {
	err  error
	msg  string
	code int
}

func New(err error, msg string) error {
	return ResponseCodeError{err: err, msg: msg, code: 500}
}
func NewWithCode(err error, msg string, code int) error {
	return ResponseCodeError{err: err, msg: msg, code: code}
}

// NewStoreFailure marks err as a failure of the backing store so that callers can
// tell it apart from a missing row.
func NewStoreFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}

func (rce ResponseCodeError) Error() string {
	if rce.err == nil {
		return rce.msg
	}
	return rce.err.Error()
}
func (rce ResponseCodeError) Msg() string {
	return rce.msg
}
func (rce ResponseCodeError) Code() int {
	return rce.code
}
func (rce ResponseCodeError) Unwrap() error {
	return rce.err
}
