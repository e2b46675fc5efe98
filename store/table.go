package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Table is a typed view of one backend key holding a JSON array of T.
//
// Read is fail-soft: a missing key and a payload that does not decode both
// yield an empty collection. Decode failures are reported to the logger and
// never returned. Backend I/O errors are returned.
type Table[T any] struct {
	backend Backend
	key     string
	log     zerolog.Logger

	mu sync.Mutex
}

func NewTable[T any](backend Backend, key string, log zerolog.Logger) *Table[T] {
	return &Table[T]{
		backend: backend,
		key:     key,
		log:     log.With().Str("table", key).Logger(),
	}
}

func (t *Table[T]) Key() string {
	return t.key
}

func (t *Table[T]) Read(ctx context.Context) ([]T, error) {
	raw, err := t.backend.Get(ctx, t.key)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		t.log.Warn().Err(err).Int("bytes", len(raw)).Msg("stored collection is malformed, treating as empty")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (t *Table[T]) Write(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.key, err)
	}
	if err := t.backend.Set(ctx, t.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", t.key, err)
	}
	return nil
}

// InitializeIfAbsent writes seed when the key has never been written.
func (t *Table[T]) InitializeIfAbsent(ctx context.Context, seed []T) (bool, error) {
	if seed == nil {
		seed = []T{}
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		return false, fmt.Errorf("encode seed for %s: %w", t.key, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	written, err := t.backend.SetIfAbsent(ctx, t.key, raw)
	if err != nil {
		return false, fmt.Errorf("seed %s: %w", t.key, err)
	}
	if written {
		t.log.Info().Int("records", len(seed)).Msg("table seeded")
	}
	return written, nil
}

// Update runs one read-modify-write cycle under the table lock. When fn
// returns an error nothing is written and the error is returned as is.
func (t *Table[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	items, err := t.Read(ctx)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}

	return t.Write(ctx, next)
}
