package auth

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	helper "ams_backend/internals/helpers"
)

// OnlyRoles passes the request through when the token role is one of the
// allowed roles. Runs behind AuthMiddleware.
func OnlyRoles(customForbiddenMessage string, allowedRoles ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr := helper.GetUserRole(c)
		if roleStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		role, err := constants.ParseRole(roleStr)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: unrecognized role",
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
