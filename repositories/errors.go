package repositories

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrLastAccount       = errors.New("cannot delete the last remaining user")
)
