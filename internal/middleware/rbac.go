package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
)

// RequireMethodAccess gates the HTTP method by role, after token validation
// and user resolution: admin may use every method, editor read and update
// methods, viewer read only.
func RequireMethodAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := UserRole(c)
		if !ok {
			return apperr.Unauthorized("invalid or expired token")
		}

		if !MethodAllowed(role, c.Method()) {
			return apperr.Forbidden("role " + string(role) + " may not " + c.Method())
		}
		return c.Next()
	}
}

// MethodAllowed reports whether role may invoke the HTTP method. Shared with
// the GraphQL resolvers, which map mutations onto the equivalent methods.
func MethodAllowed(role models.Role, method string) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleEditor:
		switch method {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodPut, fiber.MethodPatch:
			return true
		}
		return false
	case models.RoleViewer:
		switch method {
		case fiber.MethodGet, fiber.MethodHead:
			return true
		}
		return false
	default:
		return false
	}
}
