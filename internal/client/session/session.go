// Package session decides what identity the rest of the application should
// assume: guest, or the user record resolved from a persisted credential
// token. It owns the token's local lifecycle.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/client/repositories/settings"
	"github.com/drezzle/drezzle-cli/internal/logging"
)

// ErrAccessDenied is returned by RequireRole when the current session does
// not carry one of the expected roles.
var ErrAccessDenied = errors.New("access denied")

// AuthAPI is the slice of the backend client the session manager needs.
type AuthAPI interface {
	SetToken(token string)
	ClearToken()
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, username string, role models.Role) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Manager resolves and holds the current session. All access happens from
// the single interactive loop, so no lock guards the user field.
type Manager struct {
	api   AuthAPI
	store settings.Repository
	log   logging.Logger

	user *models.User // nil means guest
}

func NewManager(api AuthAPI, store settings.Repository, log logging.Logger) *Manager {
	return &Manager{api: api, store: store, log: log}
}

// Current returns the resolved user record, or nil for a guest session.
func (m *Manager) Current() *models.User {
	return m.user
}

func (m *Manager) IsGuest() bool {
	return m.user == nil
}

// Bootstrap resolves the startup identity.
//
// No stored token: guest, and no network call is made. With a token, a
// single "who am I" request decides the outcome; on any failure the session
// resolves to guest and the stored token is removed so it is not retried.
// The failure is returned so the caller can show it.
func (m *Manager) Bootstrap(ctx context.Context) (*models.User, error) {
	m.user = nil

	value, err := m.store.Get(ctx, settings.KeyAccessToken)
	if err != nil {
		m.log.Warn(ctx, "reading stored token failed", "error", err)
		return nil, nil
	}
	if len(value) == 0 {
		return nil, nil
	}

	m.api.SetToken(string(value))
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.api.ClearToken()
		if derr := m.store.Delete(ctx, settings.KeyAccessToken); derr != nil {
			m.log.Warn(ctx, "removing stale token failed", "error", derr)
		}
		return nil, fmt.Errorf("session bootstrap: %w", err)
	}

	m.user = user
	return user, nil
}

// Login authenticates with the backend and persists the returned token.
// On failure the previous session state is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	m.adopt(ctx, token)
	return nil
}

// Register creates an account and persists the returned token. The backend
// hands back only the token; the profile is fetched right after, best effort.
func (m *Manager) Register(ctx context.Context, email, password, username string, role models.Role) error {
	if !role.Valid() || role == models.RoleAdmin {
		return fmt.Errorf("role %q cannot be registered", role)
	}
	token, err := m.api.Register(ctx, email, password, username, role)
	if err != nil {
		return err
	}
	m.adopt(ctx, token)
	return nil
}

// adopt persists the fresh token and resolves the profile. Persistence
// failure is logged, not surfaced: the in-memory session is already valid.
func (m *Manager) adopt(ctx context.Context, token string) {
	if err := m.store.Set(ctx, settings.KeyAccessToken, []byte(token)); err != nil {
		m.log.Warn(ctx, "persisting token failed", "error", err)
	}
	m.api.SetToken(token)

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "profile fetch after auth failed", "error", err)
		return
	}
	m.user = user
}

// Logout clears the stored token and resets to guest. Always succeeds
// locally and never calls the backend.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Delete(ctx, settings.KeyAccessToken); err != nil {
		m.log.Warn(ctx, "removing token failed", "error", err)
	}
	m.api.ClearToken()
	m.user = nil
}

// RequireRole guards role-gated surfaces. Callers must not issue the
// protected request when an error comes back.
func (m *Manager) RequireRole(roles ...models.Role) error {
	if m.user == nil {
		return fmt.Errorf("%w: not signed in", ErrAccessDenied)
	}
	for _, r := range roles {
		if m.user.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s", ErrAccessDenied, m.user.Role)
}
