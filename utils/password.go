package utils

import (
	"strings"

	"github.com/matthewhartstonge/argon2"
)

const argon2Prefix = "$argon2"

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}

// IsHashed reports whether stored looks like an argon2 encoding rather than
// a plaintext password.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, argon2Prefix)
}
