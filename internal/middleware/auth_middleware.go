package middleware

import (
	"strings"

	"go-portfolio-api/internal/repository"
	"go-portfolio-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is middleware that validates the JWT and sets caller info in
// the request context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		// The account must still exist
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "User not found"})
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_name", user.Name)
		c.Locals("user_role_id", user.RoleID)

		return c.Next()
	}
}

// RequireCapability checks that the caller's role carries a permission bundle
// granting the named capability. Roles without a bundle are denied.
func RequireCapability(permissionRepo repository.PermissionRepository, capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID, ok := c.Locals("user_role_id").(uint)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "No role found"})
		}

		permission, err := permissionRepo.FindByRole(roleID)
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "No permissions granted for this role"})
		}

		if !permission.Grants(capability) {
			return c.Status(403).JSON(fiber.Map{
				"success": false,
				"error":   "Forbidden: requires '" + capability + "' capability",
			})
		}

		return c.Next()
	}
}
