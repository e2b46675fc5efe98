package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis parses url when given, falls back to addr/password otherwise,
// and pings the server before handing the client back.
func ConnectRedis(ctx context.Context, url, addr, password string) (*redis.Client, error) {
	var opt *redis.Options
	if url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt = parsed
	} else {
		if addr == "" {
			addr = "localhost:6379"
		}
		opt = &redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend stores each table as a plain string key, optionally
// namespaced by prefix. The backend owns client and closes it.
func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) key(k string) string {
	return r.prefix + k
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisBackend) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(key), value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
