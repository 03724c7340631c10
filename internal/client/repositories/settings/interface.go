// Package settings persists small whole-value client state: the credential
// token, the language preference, and the installation id. Each key is read
// and written as a single opaque value, last writer wins.
package settings

import "context"

type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Well-known keys.
const (
	KeyAccessToken = "access_token"
	KeyLanguage    = "app_language"
	KeyClientID    = "client_id"
)
