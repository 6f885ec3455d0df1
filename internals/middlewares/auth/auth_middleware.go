package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/configs"
	authService "ams_backend/internals/features/users/auth/service"
	helper "ams_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the identity claims in
// Locals for the handlers behind it.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing bearer token")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims, err := authService.ParseToken(tokenString, secretKey)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}
		if claims.UserID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing user ID claim")
		}

		c.Locals(helper.LocUserID, claims.UserID)
		c.Locals(helper.LocUserName, claims.UserName)
		c.Locals(helper.LocUserRole, claims.Role.String())
		c.Locals(helper.LocEmail, claims.Email)

		return c.Next()
	}
}
