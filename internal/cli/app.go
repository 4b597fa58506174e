package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/avasiljevs/linkstorage/internal/api"
	"github.com/avasiljevs/linkstorage/internal/config"
	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/repositories/session"
	"github.com/avasiljevs/linkstorage/internal/router"
	"github.com/avasiljevs/linkstorage/internal/services"
	"github.com/avasiljevs/linkstorage/internal/stores"

	_ "modernc.org/sqlite"
)

// maxRedirects bounds a single navigation. The guard's redirect targets
// always terminate (login allows anonymous, dashboard allows authenticated),
// so the bound exists only to turn a future routing mistake into a visible
// error instead of a loop.
const maxRedirects = 4

type App struct {
	config *config.Config

	authStore  *stores.AuthStore
	groupStore *stores.LinkGroupStore
	guard      *router.Guard

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	repo := session.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, repo, c.RequestTimeout, logger)

	authSvc := services.NewAuthService(apiClient, repo)
	groupSvc := services.NewLinkGroupService(apiClient, logger)

	authStore := stores.NewAuthStore(authSvc, logger)
	groupStore := stores.NewLinkGroupStore(groupSvc, logger)
	guard := router.NewGuard(authStore, authSvc, logger)

	app := &App{
		config:     c,
		authStore:  authStore,
		groupStore: groupStore,
		guard:      guard,
		reader:     bufio.NewReader(os.Stdin),
	}

	app.authStore.Init(ctx)
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.authStore.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.authStore.CurrentUser(); user != nil {
		return user.Email
	}
	return "anonymous"
}

// navigate resolves path, runs the guard, follows redirects, and renders
// the resulting page.
func (a *App) navigate(ctx context.Context, path string) error {
	route, params := router.Resolve(path)

	for i := 0; ; i++ {
		decision := a.guard.Evaluate(ctx, route)
		if decision.Allowed {
			break
		}
		if i >= maxRedirects {
			return fmt.Errorf("too many redirects from %s", path)
		}
		log.Printf("redirected to %s", decision.RedirectTo)
		route, params = router.Resolve(decision.RedirectTo)
	}

	return a.render(ctx, route, params)
}

func (a *App) render(ctx context.Context, route router.Route, params router.Params) error {
	switch route.Name {
	case router.NameHome:
		return a.pageHome()
	case router.NameLogin:
		return a.pageLogin(ctx)
	case router.NameRegister:
		return a.pageRegister(ctx)
	case router.NameActivate:
		return a.pageActivate(ctx, params["token"])
	case router.NameDashboard:
		return a.pageDashboard()
	case router.NameGroups:
		return a.pageGroups(ctx)
	case router.NameGroupCreate:
		return a.pageGroupCreate(ctx)
	case router.NameGroupEdit:
		return a.pageGroupEdit(ctx, params["id"])
	case router.NameAdmin:
		return a.pageAdmin()
	default:
		return fmt.Errorf("no page for route %q", route.Name)
	}
}

// ---- REPL command surface ----

func (a *App) Open(ctx context.Context, path string) error {
	return a.navigate(ctx, path)
}

func (a *App) Login(ctx context.Context) error {
	return a.navigate(ctx, router.PathLogin)
}

func (a *App) Register(ctx context.Context) error {
	return a.navigate(ctx, router.PathRegister)
}

func (a *App) Activate(ctx context.Context, token string) error {
	return a.navigate(ctx, "/auth/confirm/"+token)
}

func (a *App) Groups(ctx context.Context) error {
	return a.navigate(ctx, router.PathGroups)
}

func (a *App) AddGroup(ctx context.Context) error {
	return a.navigate(ctx, router.PathGroupCreate)
}

func (a *App) EditGroup(ctx context.Context, id string) error {
	return a.navigate(ctx, "/dashboard/link-groups/edit/"+id)
}

func (a *App) Admin(ctx context.Context) error {
	return a.navigate(ctx, router.PathAdmin)
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.authStore.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> admin=%v active=%v\n", user.Name, user.Email, user.IsAdmin, user.IsActive)
	return nil
}

// Refresh exchanges the stored refresh token for a fresh session.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.authStore.Refresh(ctx); err != nil {
		log.Printf("Refresh unsuccessful: %s", a.authStore.Err())
		return err
	}
	fmt.Println("Session refreshed")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authStore.Logout(ctx)
	fmt.Println("Logged out")
	return nil
}
