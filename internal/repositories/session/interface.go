// Package session persists the authenticated session (access token,
// refresh token, serialized user) in a local key/value table so the client
// survives restarts. The three keys are always written and removed together.
package session

import (
	"context"

	"github.com/avasiljevs/linkstorage/internal/models"
)

// Storage keys. External contract: tooling inspecting the session database
// relies on these names.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

type Repository interface {
	// Save persists the full session triple in a single transaction.
	Save(ctx context.Context, s *models.Session) error

	// Load returns the persisted session, or nil when none is stored.
	// A store holding only part of the triple counts as none.
	Load(ctx context.Context) (*models.Session, error)

	// SaveUser overwrites only the persisted user record. Used by profile
	// reloads, which refresh the user of an existing session.
	SaveUser(ctx context.Context, u *models.User) error

	// Clear removes all session keys. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error

	// AccessToken returns the persisted access token, or "" when absent.
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the persisted refresh token, or "" when absent.
	RefreshToken(ctx context.Context) (string, error)
}
