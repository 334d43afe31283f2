package middleware

import (
	"strings"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/config"
	"shoplane/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// routeKind distinguishes page routes (rejected with redirects) from API
// routes (rejected with JSON statuses)
type routeKind int

const (
	pageRoute routeKind = iota
	apiRoute
)

// guardRule maps a path prefix to the roles allowed past it.
// An empty role list means any authenticated user.
type guardRule struct {
	prefix string
	kind   routeKind
	roles  []string
}

// guardRules is the static protection table, checked in order; more
// specific prefixes come first. Paths matching no rule pass through.
var guardRules = []guardRule{
	{prefix: "/api/v1/products/create", kind: apiRoute, roles: []string{models.RoleSeller, models.RoleAdmin}},
	{prefix: "/api/v1/seller/apply", kind: apiRoute},
	{prefix: "/api/v1/seller", kind: apiRoute, roles: []string{models.RoleSeller, models.RoleAdmin}},
	{prefix: "/api/v1/admin", kind: apiRoute, roles: []string{models.RoleAdmin}},
	{prefix: "/api/v1/orders", kind: apiRoute},
	{prefix: "/api/v1/account", kind: apiRoute},
	{prefix: "/api/v1/todos", kind: apiRoute},
	{prefix: "/seller", kind: pageRoute, roles: []string{models.RoleSeller, models.RoleAdmin}},
	{prefix: "/admin", kind: pageRoute, roles: []string{models.RoleAdmin}},
	{prefix: "/account", kind: pageRoute},
}

// Redirect targets for rejected page requests
const (
	loginPath        = "/login"
	unauthorizedPath = "/unauthorized"
)

// RouteGuard enforces the protection table on every inbound request
// before handler-specific logic runs. It performs no I/O beyond
// signature verification.
func RouteGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rule := matchRule(c.Path())
		if rule == nil {
			return c.Next()
		}

		claims := ResolveSession(c, cfg)
		if claims == nil {
			// Missing and invalid credentials share one rejection path.
			if rule.kind == pageRoute {
				return c.Redirect(loginPath, fiber.StatusFound)
			}
			return response.Unauthorized(c, "Unauthorized")
		}

		if !roleAllowed(rule, claims.Role) {
			if rule.kind == pageRoute {
				return c.Redirect(unauthorizedPath, fiber.StatusFound)
			}
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		setSessionLocals(c, claims)
		return c.Next()
	}
}

func matchRule(path string) *guardRule {
	for i := range guardRules {
		if strings.HasPrefix(path, guardRules[i].prefix) {
			return &guardRules[i]
		}
	}
	return nil
}

func roleAllowed(rule *guardRule, role string) bool {
	if len(rule.roles) == 0 {
		return true
	}
	for _, allowed := range rule.roles {
		if role == allowed {
			return true
		}
	}
	return false
}
