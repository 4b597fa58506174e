package services

import (
	"context"

	"github.com/avasiljevs/linkstorage/internal/models"
)

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	// preset results
	RegisterErr error

	ActivateRet *models.User
	ActivateErr error

	LoginRet *models.Session
	LoginErr error

	ProfileRet *models.User
	ProfileErr error

	RefreshRet *models.Session
	RefreshErr error

	CreateRet *models.LinkGroup
	CreateErr error

	UpdateRet *models.LinkGroup
	UpdateErr error

	DeleteErr error

	ListRet *models.LinkGroupList
	ListErr error

	GetRet *models.LinkGroup
	GetErr error

	// captured inputs
	LastRegister      models.RegisterRequest
	LastActivateToken string
	LastActivateCode  string
	LastLogin         models.LoginRequest
	LastRefreshToken  string
	LastCreate        models.LinkGroupCreate
	LastUpdate        models.LinkGroupUpdate
	LastDeleteID      int
	LastListParams    models.ListParams
	LastGetID         int
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) Activate(ctx context.Context, token, code string) (*models.User, error) {
	f.LastActivateToken = token
	f.LastActivateCode = code
	return f.ActivateRet, f.ActivateErr
}

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) RefreshToken(ctx context.Context, refreshToken string) (*models.Session, error) {
	f.LastRefreshToken = refreshToken
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeClient) CreateGroup(ctx context.Context, req models.LinkGroupCreate) (*models.LinkGroup, error) {
	f.LastCreate = req
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateGroup(ctx context.Context, req models.LinkGroupUpdate) (*models.LinkGroup, error) {
	f.LastUpdate = req
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteGroup(ctx context.Context, id int) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) ListGroups(ctx context.Context, params models.ListParams) (*models.LinkGroupList, error) {
	f.LastListParams = params
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetGroup(ctx context.Context, id int) (*models.LinkGroup, error) {
	f.LastGetID = id
	return f.GetRet, f.GetErr
}
