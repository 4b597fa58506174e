package api

import (
	"context"

	"github.com/avasiljevs/linkstorage/internal/models"
)

// TokenSource yields the current access token, or "" when no session is
// persisted. Implemented by the session repository.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the API contract the service layer depends on.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Activate(ctx context.Context, token string, code string) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	Profile(ctx context.Context) (*models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.Session, error)

	CreateGroup(ctx context.Context, req models.LinkGroupCreate) (*models.LinkGroup, error)
	UpdateGroup(ctx context.Context, req models.LinkGroupUpdate) (*models.LinkGroup, error)
	DeleteGroup(ctx context.Context, id int) error
	ListGroups(ctx context.Context, params models.ListParams) (*models.LinkGroupList, error)
	GetGroup(ctx context.Context, id int) (*models.LinkGroup, error)
}
