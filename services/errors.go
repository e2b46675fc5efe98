package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCartNotFound       = errors.New("cart not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSelfDelete         = errors.New("cannot delete the signed-in account")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
