// Package stores holds the in-memory state containers of the client: a
// reactive projection of "who am I" and of the link-group collection.
// State is mutated only through action methods; views and the navigation
// guard read snapshots.
package stores

import (
	"context"
	"sync"

	"github.com/avasiljevs/linkstorage/internal/api"
	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/avasiljevs/linkstorage/internal/services"
)

// Fallback messages shown when the server reports no structured error.
const (
	msgRegisterFailed = "registration failed"
	msgLoginFailed    = "login failed"
	msgActivateFailed = "activation failed"
	msgRefreshFailed  = "session refresh failed"
)

// AuthStore is the authentication session state. It is anonymous while
// user is nil and authenticated otherwise; there is no automatic
// transition on credential expiry.
type AuthStore struct {
	auth services.AuthService
	log  logging.Logger

	mu        sync.Mutex
	user      *models.User
	isLoading bool
	lastErr   string
}

func NewAuthStore(auth services.AuthService, log logging.Logger) *AuthStore {
	return &AuthStore{auth: auth, log: log.With("store", "auth")}
}

// Init rehydrates the in-memory user from the persisted session. A no-op
// when nothing (or something unreadable) is stored.
func (s *AuthStore) Init(ctx context.Context) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading stored session", "error", err)
		return
	}
	if user == nil {
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Register creates an account. It never mutates the session; the account
// still has to be activated and logged in.
func (s *AuthStore) Register(ctx context.Context, req models.RegisterRequest) error {
	s.begin()
	defer s.finish()

	if err := s.auth.Register(ctx, req); err != nil {
		s.fail(api.ErrorMessage(err, msgRegisterFailed))
		return err
	}
	return nil
}

// Login authenticates and, on success, installs the returned user. On
// failure the store stays anonymous and records the error message.
func (s *AuthStore) Login(ctx context.Context, req models.LoginRequest) error {
	s.begin()
	defer s.finish()

	user, err := s.auth.Login(ctx, req)
	if err != nil {
		s.fail(api.ErrorMessage(err, msgLoginFailed))
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout unconditionally clears the persisted session and the in-memory
// user. It cannot fail: a storage error is logged and the in-memory state
// is reset regardless.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Error(ctx, "clearing persisted session", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// LoadProfile fetches the current user and replaces both the in-memory and
// the persisted record. The returned error is informational: callers (the
// navigation guard in particular) may ignore it, and the store only logs.
func (s *AuthStore) LoadProfile(ctx context.Context) error {
	user, err := s.auth.Profile(ctx)
	if err != nil {
		s.log.Error(ctx, "loading profile", "error", err)
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// ActivateAccount confirms a registration. It returns the activated user
// but deliberately does not establish a session; logging in stays a
// separate step.
func (s *AuthStore) ActivateAccount(ctx context.Context, token, code string) (*models.User, error) {
	s.begin()
	defer s.finish()

	user, err := s.auth.Activate(ctx, token, code)
	if err != nil {
		s.fail(api.ErrorMessage(err, msgActivateFailed))
		return nil, err
	}
	return user, nil
}

// Refresh exchanges the stored refresh token for a new session and installs
// the returned user. Only ever invoked explicitly.
func (s *AuthStore) Refresh(ctx context.Context) error {
	s.begin()
	defer s.finish()

	user, err := s.auth.Refresh(ctx)
	if err != nil {
		s.fail(api.ErrorMessage(err, msgRefreshFailed))
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// CurrentUser returns a copy of the current user, or nil when anonymous.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is derived state: true iff a user is installed.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsAdmin is derived state, defaulting to false when anonymous.
func (s *AuthStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsAdmin
}

func (s *AuthStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Err returns the message of the last failed action, or "".
func (s *AuthStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.isLoading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *AuthStore) finish() {
	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
}

func (s *AuthStore) fail(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
