package router

import (
	"context"

	"github.com/avasiljevs/linkstorage/internal/logging"
)

// AuthState is the view of the auth session the guard reads and, in the
// rehydration step, refreshes.
type AuthState interface {
	IsAuthenticated() bool
	IsAdmin() bool
	LoadProfile(ctx context.Context) error
}

// TokenProbe reports whether an access credential is persisted, without
// touching the in-memory state.
type TokenProbe interface {
	HasAccessToken(ctx context.Context) (bool, error)
}

// Decision is the outcome of one guard evaluation: either the transition is
// allowed, or the router must navigate to RedirectTo instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard is the pre-navigation authorization check. Evaluation is free of
// hidden mutation except for the one sanctioned side effect: rehydrating
// the auth state from a persisted credential before deciding.
type Guard struct {
	state  AuthState
	tokens TokenProbe
	log    logging.Logger
}

func NewGuard(state AuthState, tokens TokenProbe, log logging.Logger) *Guard {
	return &Guard{state: state, tokens: tokens, log: log.With("component", "guard")}
}

// Evaluate decides the given transition. Rules apply in priority order:
//
//  1. If the in-memory user is unset but an access credential is persisted,
//     rehydrate by awaiting a profile load. Its failure is deliberately
//     ignored; the remaining rules then see an anonymous state.
//  2. Auth-requiring target while anonymous: redirect to the login page.
//  3. Admin-requiring target without admin rights: redirect to the dashboard.
//  4. Entry pages (home, login, register) while authenticated: redirect to
//     the dashboard.
//  5. Otherwise allow.
func (g *Guard) Evaluate(ctx context.Context, route Route) Decision {
	if !g.state.IsAuthenticated() {
		has, err := g.tokens.HasAccessToken(ctx)
		if err != nil {
			g.log.Warn(ctx, "probing stored credential", "error", err)
		}
		if err == nil && has {
			// Blocks this navigation until the profile load settles.
			_ = g.state.LoadProfile(ctx)
		}
	}

	if route.RequiresAuth && !g.state.IsAuthenticated() {
		return Decision{RedirectTo: PathLogin}
	}

	if route.RequiresAdmin && !g.state.IsAdmin() {
		return Decision{RedirectTo: PathDashboard}
	}

	if g.state.IsAuthenticated() && isEntryRoute(route.Name) {
		return Decision{RedirectTo: PathDashboard}
	}

	return Decision{Allowed: true}
}
