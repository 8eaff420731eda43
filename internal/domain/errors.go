package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrAlreadyUsed       = errors.New("code already used")
	ErrAlreadyPenalized  = errors.New("posting already penalized")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOwnerConflict     = errors.New("owner conflict")
	ErrInvalidTransition = errors.New("invalid state transition")

	ErrValidation     = errors.New("validation error")
	ErrCodeNotClaimed = fmt.Errorf("%w: code is not claimed by any user", ErrValidation)

	ErrOTPLimitExceeded = errors.New("otp limit exceeded")
	ErrOTPMismatch      = errors.New("otp mismatch")
)

// ValidationError ошибка входных данных. errors.Is(err, ErrValidation) для нее всегда true.
type ValidationError struct {
	Field string
	Msg   string
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ErrorKind возвращает стабильное строковое имя вида ошибки. Используется в ответах пакетных операций.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyUsed):
		return "already_used"
	case errors.Is(err, ErrAlreadyPenalized):
		return "already_penalized"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrOwnerConflict):
		return "owner_conflict"
	case errors.Is(err, ErrCodeNotClaimed):
		return "not_claimed"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	default:
		return "internal_error"
	}
}
