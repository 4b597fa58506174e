package stores

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/avasiljevs/linkstorage/internal/api"
	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements services.AuthService for store tests.
type fakeAuthService struct {
	RegisterErr error

	ActivateRet *models.User
	ActivateErr error

	LoginRet *models.User
	LoginErr error

	ProfileRet *models.User
	ProfileErr error

	RefreshRet *models.User
	RefreshErr error

	LogoutErr error

	CurrentRet *models.User
	CurrentErr error

	HasTokenRet bool
	HasTokenErr error

	calls []string
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	f.calls = append(f.calls, "register")
	return f.RegisterErr
}

func (f *fakeAuthService) Activate(ctx context.Context, token, code string) (*models.User, error) {
	f.calls = append(f.calls, "activate")
	return f.ActivateRet, f.ActivateErr
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	f.calls = append(f.calls, "login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthService) Profile(ctx context.Context) (*models.User, error) {
	f.calls = append(f.calls, "profile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeAuthService) Refresh(ctx context.Context) (*models.User, error) {
	f.calls = append(f.calls, "refresh")
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	return f.LogoutErr
}

func (f *fakeAuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.CurrentRet, f.CurrentErr
}

func (f *fakeAuthService) HasAccessToken(ctx context.Context) (bool, error) {
	return f.HasTokenRet, f.HasTokenErr
}

func discardLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func adminUser() *models.User {
	return &models.User{ID: 2, Name: "Root", Email: "root@example.com", IsAdmin: true}
}

func plainUser() *models.User {
	return &models.User{ID: 1, Name: "Anna", Email: "anna@example.com"}
}

func TestAuthStore_Login_Success(t *testing.T) {
	svc := &fakeAuthService{LoginRet: plainUser()}
	store := NewAuthStore(svc, discardLogger())
	ctx := context.Background()

	require.False(t, store.IsAuthenticated())

	err := store.Login(ctx, models.LoginRequest{Email: "anna@example.com", Password: "qwerty"})
	require.NoError(t, err)
	require.True(t, store.IsAuthenticated())
	require.False(t, store.IsAdmin())
	require.False(t, store.IsLoading())
	require.Empty(t, store.Err())
	require.Equal(t, "anna@example.com", store.CurrentUser().Email)
}

func TestAuthStore_Login_FailureStaysAnonymous(t *testing.T) {
	svc := &fakeAuthService{LoginErr: &api.Error{Type: "UNAUTHORIZED", Message: "bad credentials"}}
	store := NewAuthStore(svc, discardLogger())

	err := store.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	require.False(t, store.IsAuthenticated())
	require.False(t, store.IsLoading())
	require.Equal(t, "bad credentials", store.Err())
}

func TestAuthStore_Login_TransportErrorUsesFallbackMessage(t *testing.T) {
	svc := &fakeAuthService{LoginErr: errors.New("connection refused")}
	store := NewAuthStore(svc, discardLogger())

	_ = store.Login(context.Background(), models.LoginRequest{})
	require.Equal(t, msgLoginFailed, store.Err())
}

func TestAuthStore_Register_DoesNotAuthenticate(t *testing.T) {
	svc := &fakeAuthService{}
	store := NewAuthStore(svc, discardLogger())

	require.NoError(t, store.Register(context.Background(), models.RegisterRequest{Name: "Anna"}))
	require.False(t, store.IsAuthenticated())
	require.False(t, store.IsLoading())
}

func TestAuthStore_Logout_AlwaysResets(t *testing.T) {
	svc := &fakeAuthService{LoginRet: plainUser(), LogoutErr: errors.New("disk gone")}
	store := NewAuthStore(svc, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, models.LoginRequest{}))
	require.True(t, store.IsAuthenticated())

	// Even a failing storage clear must leave the store anonymous.
	store.Logout(ctx)
	require.False(t, store.IsAuthenticated())
}

func TestAuthStore_ActivateAccount_NoAutoLogin(t *testing.T) {
	svc := &fakeAuthService{ActivateRet: plainUser()}
	store := NewAuthStore(svc, discardLogger())

	user, err := store.ActivateAccount(context.Background(), "tok", "1234")
	require.NoError(t, err)
	require.Equal(t, "anna@example.com", user.Email)
	require.False(t, store.IsAuthenticated())
}

func TestAuthStore_LoadProfile_ReplacesUser(t *testing.T) {
	svc := &fakeAuthService{ProfileRet: adminUser()}
	store := NewAuthStore(svc, discardLogger())

	require.NoError(t, store.LoadProfile(context.Background()))
	require.True(t, store.IsAuthenticated())
	require.True(t, store.IsAdmin())
}

func TestAuthStore_LoadProfile_FailureKeepsState(t *testing.T) {
	svc := &fakeAuthService{ProfileErr: errors.New("boom")}
	store := NewAuthStore(svc, discardLogger())

	err := store.LoadProfile(context.Background())
	require.Error(t, err)
	require.False(t, store.IsAuthenticated())
}

func TestAuthStore_Init_RehydratesFromStorage(t *testing.T) {
	svc := &fakeAuthService{CurrentRet: plainUser()}
	store := NewAuthStore(svc, discardLogger())

	store.Init(context.Background())
	require.True(t, store.IsAuthenticated())
}

func TestAuthStore_Init_NothingStored(t *testing.T) {
	svc := &fakeAuthService{}
	store := NewAuthStore(svc, discardLogger())

	store.Init(context.Background())
	require.False(t, store.IsAuthenticated())
}

func TestAuthStore_Refresh_ReplacesUser(t *testing.T) {
	svc := &fakeAuthService{LoginRet: plainUser(), RefreshRet: adminUser()}
	store := NewAuthStore(svc, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, models.LoginRequest{}))
	require.NoError(t, store.Refresh(ctx))
	require.Equal(t, "root@example.com", store.CurrentUser().Email)
}

func TestAuthStore_CurrentUserReturnsCopy(t *testing.T) {
	svc := &fakeAuthService{LoginRet: plainUser()}
	store := NewAuthStore(svc, discardLogger())
	require.NoError(t, store.Login(context.Background(), models.LoginRequest{}))

	u := store.CurrentUser()
	u.Name = "mutated"
	require.Equal(t, "Anna", store.CurrentUser().Name)
}
