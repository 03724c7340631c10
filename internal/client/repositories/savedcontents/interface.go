// Package savedcontents mirrors the user's saved-content list into the local
// store so the saved screen can still render while the backend is
// unreachable. The mirror is replaced wholesale after each successful fetch.
package savedcontents

import (
	"context"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Content, error)
	// ReplaceAll swaps the whole mirror for the given records in one
	// transaction.
	ReplaceAll(ctx context.Context, contents []models.Content) error
	Clear(ctx context.Context) error
}
