package client

import (
	"context"
	"errors"
	"strings"

	"datavault360/internal/models"

	"go.uber.org/zap"
)

// Role names as issued by the backend
type Role string

const (
	RoleAdmin   Role = models.RoleAdmin
	RoleDoctor  Role = models.RoleDoctor
	RolePatient Role = models.RolePatient
	RoleLab     Role = models.RoleLab
)

// Route is a dashboard location
type Route string

const (
	RouteLogin   Route = "/login"
	RouteHome    Route = "/"
	RouteAdmin   Route = "/admin"
	RouteDoctor  Route = "/doctor"
	RoutePatient Route = "/patient"
)

var homeRoutes = map[Role]Route{
	RoleAdmin:   RouteAdmin,
	RoleDoctor:  RouteDoctor,
	RolePatient: RoutePatient,
}

// HomeRoute returns the dashboard for role. LAB has no dashboard of its own and,
// like any unrecognized role, lands on RouteHome.
func HomeRoute(role Role) Route {
	if r, ok := homeRoutes[role]; ok {
		return r
	}
	return RouteHome
}

var errInvalidCredentials = &Error{Kind: KindAuth, Message: "invalid credentials"}

// Gate owns the session: it logs in and out and decides which routes the caller may open
type Gate struct {
	api *API
	log *zap.Logger
}

func NewGate(api *API, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{api: api, log: log}
}

type loginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Role    Role   `json:"role"`
}

// Login authenticates, stores the session and returns the role's home route.
// Every failure is reported as the same invalid credentials error.
func (g *Gate) Login(ctx context.Context, username, password string) (Route, error) {
	var resp loginResponse
	err := g.api.post(ctx, "auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		g.log.Debug("Login failed", zap.String("username", username), zap.Error(err))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", errInvalidCredentials
	}
	if resp.Access == "" {
		return "", errInvalidCredentials
	}

	if err := g.api.store.Save(Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Role:         resp.Role,
	}); err != nil {
		return "", err
	}
	g.log.Info("Logged in", zap.String("username", username), zap.String("role", string(resp.Role)))
	return HomeRoute(resp.Role), nil
}

// Logout clears the local session whatever the backend says and returns the login route.
// The refresh token is revoked best-effort.
func (g *Gate) Logout(ctx context.Context) Route {
	if s, ok := g.api.store.Load(); ok && s.RefreshToken != "" {
		if err := g.api.post(ctx, "auth/logout/", map[string]string{"refresh": s.RefreshToken}, nil); err != nil {
			g.log.Debug("Refresh token revoke failed", zap.Error(err))
		}
	}
	if err := g.api.store.Clear(); err != nil {
		g.log.Warn("Failed to clear session", zap.Error(err))
	}
	return RouteLogin
}

// CurrentRole reports the stored role; false means unauthenticated
func (g *Gate) CurrentRole() (Role, bool) {
	s, ok := g.api.store.Load()
	if !ok || s.Role == "" {
		return "", false
	}
	return s.Role, true
}

// Guard decides where a navigation to route ends up.
// Role dashboards require the matching role; others are redirected to their own home.
func (g *Gate) Guard(route Route) Route {
	role, ok := g.CurrentRole()
	if route == RouteLogin {
		return route
	}
	if !ok {
		return RouteLogin
	}
	for r, home := range homeRoutes {
		if hasPrefix(route, home) && r != role {
			return HomeRoute(role)
		}
	}
	return route
}

func hasPrefix(route, prefix Route) bool {
	return route == prefix || strings.HasPrefix(string(route), string(prefix)+"/")
}

// Refresh exchanges the stored refresh token for a new access token
func (g *Gate) Refresh(ctx context.Context) error {
	s, ok := g.api.store.Load()
	if !ok || s.RefreshToken == "" {
		return &Error{Kind: KindAuth, Message: "not logged in"}
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := g.api.post(ctx, "auth/refresh/", map[string]string{"refresh": s.RefreshToken}, &resp); err != nil {
		return err
	}
	s.AccessToken = resp.Access
	return g.api.store.Save(s)
}
