package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware after a token verifies.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocUserRole = "user_role"
	LocEmail    = "user_email"
)

// GetRawAccessToken returns the bearer token from the Authorization header.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserID reads the authenticated user id from Locals. Empty when the
// request carried no identity claim.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserID).(string); ok {
		return v
	}
	return ""
}

func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}
