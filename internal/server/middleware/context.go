package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/labstack/echo/v4"

	"github.com/insightgrid/insightgrid/pkg/ai"
	"github.com/insightgrid/insightgrid/pkg/loader"
)

// AppUser identifies the authenticated caller. Subject is the JWT sub
// claim; empty when auth is disabled.
type AppUser struct {
	Subject string
}

// App bundles the shared collaborators every handler needs. Key is nil
// when AUTH_JWKS_URL is unset and requests pass through unauthenticated.
// Vision is nil when no vision adapter is configured.
type App struct {
	Resolver *loader.Resolver
	Vision   ai.VisionClient
	Key      *keyfunc.Keyfunc
}

// AppContext wraps the echo context with the shared App state and the
// authenticated user.
type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
