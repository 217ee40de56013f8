package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/labstack/echo/v4"
)

// runAuth sends a request through AuthMiddleware and reports whether the
// wrapped handler ran.
func runAuth(t *testing.T, app *App, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	cc := &AppContext{Context: e.NewContext(req, rec), App: app}

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	if err := AuthMiddleware(next)(cc); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, called
}

func TestAuthMiddlewarePassesThroughWithoutKey(t *testing.T) {
	rec, called := runAuth(t, &App{}, "")

	if !called {
		t.Fatal("handler not called on open deployment")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	// The header checks run before the key is ever consulted, so a nil
	// keyfunc behind a non-nil pointer is enough to switch auth on.
	var key keyfunc.Keyfunc
	app := &App{Key: &key}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, called := runAuth(t, app, tt.header)
			if called {
				t.Fatal("handler called without valid credentials")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}
