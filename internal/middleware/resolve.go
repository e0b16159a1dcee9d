package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

const (
	localUserID = "userID"
	localRole   = "role"
)

// ResolveUser loads the token subject from storage. A token whose subject no
// longer resolves to an existing user is rejected even when its signature is
// valid.
func ResolveUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return apperr.Unauthorized("invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperr.Unauthorized("invalid or expired token")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return apperr.Unauthorized("invalid or expired token")
		}

		user, err := auth.UserByID(userID)
		if err != nil {
			return apperr.Unauthorized("invalid or expired token")
		}

		c.Locals(localUserID, user.ID)
		c.Locals(localRole, user.Role)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by ResolveUser.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(localUserID).(uuid.UUID)
	return id, ok
}

// UserRole returns the authenticated user's role set by ResolveUser.
func UserRole(c *fiber.Ctx) (models.Role, bool) {
	role, ok := c.Locals(localRole).(models.Role)
	return role, ok
}
