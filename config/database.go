package config

import "fmt"

// DSN returns DATABASE_URL when set, otherwise a URL built from the DB_* parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}
