package store

import (
	"context"
	"fmt"
	"strings"

	"bar-bike/config"
)

const (
	DriverBolt     = "bolt"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Open builds the backend selected by STORE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Store.Driver)) {
	case DriverBolt, "":
		return OpenBolt(cfg.Store.BoltPath)
	case DriverRedis:
		client, err := ConnectRedis(ctx, cfg.Redis.URL, cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client, cfg.Store.RedisPrefix), nil
	case DriverPostgres, "postgresql":
		return OpenPostgres(ctx, cfg.Database.DSN())
	case DriverMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
