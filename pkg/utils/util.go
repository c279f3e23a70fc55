package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const pasetoKeySize = 32

// GeneratePasetoSecret returns a random v2.local key, base64url encoded, in
// the form PASETO_SECRET expects.
func GeneratePasetoSecret() (string, error) {
	key := make([]byte, pasetoKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}
