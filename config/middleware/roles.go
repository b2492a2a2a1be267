package middleware

import (
	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/pkg/paseto"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles gates a subtree to the given panel roles. AuthMiddleware must
// run before it so the claims are already in Locals.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data is corrupted"})
		}

		if !allowed[claims.Role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Your role is not allowed on this endpoint"})
		}

		return c.Next()
	}
}

// AdminMiddleware gates the endpoints only the admin may call: approvals,
// rejections, deletes, workplace and account management.
func AdminMiddleware() fiber.Handler {
	return RequireRoles(models.RoleAdmin)
}
