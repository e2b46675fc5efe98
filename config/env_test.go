package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bar-bike/logx"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "bolt", cfg.Store.Driver)
	assert.Equal(t, "barbike_db_products_v1", cfg.Store.ProductsKey)
	assert.Equal(t, "barbike_db_users_v1", cfg.Store.UsersKey)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "972543043045", cfg.WhatsAppPhone)
	assert.False(t, cfg.PasswordHashing)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/shop")
	t.Setenv("PASSWORD_HASHING", "true")
	t.Setenv("CART_TTL", "30m")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "shop")
	t.Setenv("SMTP_PASS", "pw")
	t.Setenv("SMTP_NOTIFY_TO", "owner@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, logx.Production, cfg.LogEnvironment())
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.Database.DSN())
	assert.True(t, cfg.PasswordHashing)
	assert.Equal(t, 30*time.Minute, cfg.CartTTL)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestDatabaseDSNFromParts(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5433/n?sslmode=disable", d.DSN())
}
