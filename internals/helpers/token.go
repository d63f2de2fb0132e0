// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"guidanceku_backend/internals/constants"
)

// GetUserIDFromToken reads user_id from c.Locals("user_id").
// 401 when not logged in, 400 when the format is off.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// GetRoleFromToken reads the role claim set by the auth middleware.
func GetRoleFromToken(c *fiber.Ctx) (constants.Role, error) {
	v, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing role information")
	}
	role, err := constants.ParseRole(v)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid role in token")
	}
	return role, nil
}
