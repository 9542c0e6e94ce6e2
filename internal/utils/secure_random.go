package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionIDBytes is the entropy of a session ID before encoding.
const sessionIDBytes = 32

// NewSessionID returns an unguessable, URL-safe identifier for a dashboard
// session. It is what the session cookie carries.
func NewSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
