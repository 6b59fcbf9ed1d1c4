package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrItemUnavailable   = errors.New("book item is not available")
	ErrNoInventory       = errors.New("not enough available copies")
	ErrRequestImmutable  = errors.New("returned request can not be edited")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrCategoryCycle     = errors.New("category parent would create a cycle")
	ErrBadDateRange      = errors.New("invalid date range")
)

// ValidationError wraps a user-facing form problem; handlers render it as a
// 400 instead of a server fault.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
