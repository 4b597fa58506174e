// Package services contains the application services of the link-storage
// client. This file defines the authentication service: one method per auth
// endpoint, plus accessors over the locally persisted session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avasiljevs/linkstorage/internal/api"
	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/avasiljevs/linkstorage/internal/repositories/session"
)

// ErrNoRefreshToken is returned by Refresh when the store holds no session.
var ErrNoRefreshToken = errors.New("no refresh token stored")

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Register: create a new account; does not touch the session.
//   - Activate: confirm an account by token+code; returns the activated user
//     but does not establish a session (login stays a separate step).
//   - Login: authenticate and persist the full session triple atomically.
//   - Profile: fetch the current user and overwrite the persisted user record.
//   - Refresh: exchange the stored refresh token for a new session and
//     persist it. Never invoked automatically.
//   - Logout: remove the persisted session.
//   - CurrentUser / HasAccessToken: read-only views over the stored session.
//
// All methods honor context cancellation; the HTTP client additionally
// applies its own per-request timeout.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Activate(ctx context.Context, token, code string) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	HasAccessToken(ctx context.Context) (bool, error)
}

type authService struct {
	client api.Client
	repo   session.Repository
}

// NewAuthService constructs an AuthService bound to the given API client
// and session repository.
func NewAuthService(client api.Client, repo session.Repository) AuthService {
	return &authService{client: client, repo: repo}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	return a.client.Register(ctx, req)
}

func (a *authService) Activate(ctx context.Context, token, code string) (*models.User, error) {
	return a.client.Activate(ctx, token, code)
}

// Login authenticates against the server and writes the returned session
// triple through to the local store in one transaction.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	s, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := a.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &s.User, nil
}

// Profile fetches the current user and overwrites the persisted user record.
func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	user, err := a.client.Profile(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.repo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("persisting user: %w", err)
	}
	return user, nil
}

// Refresh exchanges the stored refresh token for a fresh session and
// persists it, same write-through as Login.
func (a *authService) Refresh(ctx context.Context) (*models.User, error) {
	refresh, err := a.repo.RefreshToken(ctx)
	if err != nil {
		return nil, err
	}
	if refresh == "" {
		return nil, ErrNoRefreshToken
	}

	s, err := a.client.RefreshToken(ctx, refresh)
	if err != nil {
		return nil, err
	}

	if err := a.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &s.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.repo.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	s, err := a.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return &s.User, nil
}

func (a *authService) HasAccessToken(ctx context.Context) (bool, error) {
	token, err := a.repo.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
