package auth

import (
	"github.com/gofiber/fiber/v2"

	"guidanceku_backend/internals/constants"
)

// RoleMiddlewareWithCustomError validates the role claim + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		role, err := constants.ParseRole(raw)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: unknown role",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcuts to keep route files clean
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

func OnlyAdmin(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}

func OnlyCounselor(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorCounselor(feature), constants.RoleCounselor)
}

func OnlyStudent(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorStudent(feature), constants.RoleStudent)
}
