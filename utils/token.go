package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateShareToken returns a URL-safe token with nbytes of entropy.
// Share tokens are the only credential guarding the public profile
// view, so this must come from crypto/rand.
func GenerateShareToken(nbytes int) (string, error) {
	b := make([]byte, nbytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
