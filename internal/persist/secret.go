package persist

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// secretName is the collection the JWT signing secret is kept under.
const secretName = "warehouse_jwt_secret"

// EnsureJWTSecret returns the stored JWT secret, generating and storing one
// on first run so tokens survive restarts. The process is the single writer,
// so load-then-save is race-free.
func EnsureJWTSecret(ctx context.Context, p Persister) (string, error) {
	existing, err := p.Load(ctx, secretName)
	if err != nil {
		return "", fmt.Errorf("loading jwt secret: %w", err)
	}
	if len(existing) > 0 {
		return string(existing), nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	if err := p.Save(ctx, secretName, []byte(secret)); err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}
	return secret, nil
}
