// Package store holds the durable key-value substrate behind the repositories.
// A Backend maps a table key to one serialized collection; Table layers typed,
// fail-soft JSON access on top of it.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("store: key not found")

type Backend interface {
	// Get returns the raw payload stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces whatever is stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// SetIfAbsent writes value only when key has no stored payload and
	// reports whether it did.
	SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error)
	Close() error
}
