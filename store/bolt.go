package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("barbike")

// BoltBackend keeps every table under one bucket of a local bbolt file.
type BoltBackend struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltBackend, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create bolt directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bolt bucket: %w", err)
	}

	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid for the life of the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (b *BoltBackend) Set(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
}

func (b *BoltBackend) SetIfAbsent(_ context.Context, key string, value []byte) (bool, error) {
	written := false
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket.Get([]byte(key)) != nil {
			return nil
		}
		written = true
		return bucket.Put([]byte(key), value)
	})
	return written, err
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
