package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/drezzle/drezzle-cli/internal/client/repositories/settings"
)

// TokenInfo is what the client can read out of the bearer token without the
// signing key: the subject and expiry claims. Display only, never used for
// gating; the backend stays the authority on token validity.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenInfo decodes the stored token's claims without verifying the
// signature.
func (m *Manager) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	value, err := m.store.Get(ctx, settings.KeyAccessToken)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("no stored token")
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(string(value), &claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	info := &TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
