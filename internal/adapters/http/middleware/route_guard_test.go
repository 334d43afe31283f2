package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/config"
	"shoplane/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func guardTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "guard-test-secret", ExpiryDays: 7},
	}

	app := fiber.New()
	app.Use(RouteGuard(cfg))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/api/v1/products", ok)
	app.Get("/api/v1/orders", ok)
	app.Get("/api/v1/seller/dashboard", ok)
	app.Post("/api/v1/seller/apply", ok)
	app.Get("/api/v1/admin/users", ok)
	app.Get("/account", ok)
	app.Get("/admin", ok)

	return app, cfg
}

func mintToken(t *testing.T, cfg *config.Config, userID uint, role string) string {
	t.Helper()
	token, err := jwt.Generate(userID, role, "u@example.com", "U", cfg.JWT.Secret, cfg.JWT.ExpiryDays)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return token
}

func TestRouteGuardPublicPassesThrough(t *testing.T) {
	app, _ := guardTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200 for public route, got %d", resp.StatusCode)
	}
}

func TestRouteGuardMissingTokenAPI(t *testing.T) {
	app, _ := guardTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", resp.StatusCode)
	}
}

func TestRouteGuardInvalidTokenAPI(t *testing.T) {
	app, _ := guardTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	// Invalid credentials are indistinguishable from missing ones
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for an invalid token, got %d", resp.StatusCode)
	}
}

func TestRouteGuardMissingTokenPageRedirectsToLogin(t *testing.T) {
	app, _ := guardTestApp(t)

	req := httptest.NewRequest("GET", "/account", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302 for an unauthenticated page request, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestRouteGuardWrongRoleAPI(t *testing.T) {
	app, cfg := guardTestApp(t)
	token := mintToken(t, cfg, 1, models.RoleBuyer)

	req := httptest.NewRequest("GET", "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("expected 403 for a buyer on an admin route, got %d", resp.StatusCode)
	}
}

func TestRouteGuardWrongRolePageRedirectsToUnauthorized(t *testing.T) {
	app, cfg := guardTestApp(t)
	token := mintToken(t, cfg, 1, models.RoleBuyer)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302 for a buyer on an admin page, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/unauthorized" {
		t.Errorf("expected redirect to /unauthorized, got %q", loc)
	}
}

func TestRouteGuardAllowsMatchingRole(t *testing.T) {
	app, cfg := guardTestApp(t)
	token := mintToken(t, cfg, 7, models.RoleSeller)

	req := httptest.NewRequest("GET", "/api/v1/seller/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200 for a seller on a seller route, got %d", resp.StatusCode)
	}
}

func TestRouteGuardApplyOpenToAnyAuthenticated(t *testing.T) {
	app, cfg := guardTestApp(t)
	token := mintToken(t, cfg, 3, models.RoleBuyer)

	req := httptest.NewRequest("POST", "/api/v1/seller/apply", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200 for a buyer applying to sell, got %d", resp.StatusCode)
	}
}

func TestRouteGuardCookiePreferredOverHeader(t *testing.T) {
	app, cfg := guardTestApp(t)
	token := mintToken(t, cfg, 9, models.RoleBuyer)

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	// The valid cookie wins; the junk header is never consulted
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200 when the cookie holds a valid token, got %d", resp.StatusCode)
	}
}
