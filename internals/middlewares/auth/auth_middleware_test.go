package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ams_backend/internals/configs"
	"ams_backend/internals/constants"
	authService "ams_backend/internals/features/users/auth/service"
	userModel "ams_backend/internals/features/users/user/model"
	helper "ams_backend/internals/helpers"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/private", AuthMiddleware(), func(c *fiber.Ctx) error {
		return helper.Success(c, "OK", fiber.Map{"id": helper.GetUserID(c)})
	})
	app.Get("/teacher-only",
		AuthMiddleware(),
		OnlyRoles("Teachers only.", constants.RoleTeacher),
		func(c *fiber.Ctx) error {
			return helper.Success(c, "OK", nil)
		})
	return app
}

func issueToken(t *testing.T, role constants.Role) string {
	t.Helper()
	token, err := authService.CreateToken(userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Test User",
		Email:    "user@example.com",
		Role:     role,
	}, configs.JWTSecret)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := newTestApp()

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/private", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := authService.CreateToken(userModel.UserModel{
			ID:   uuid.New(),
			Role: constants.RoleAdmin,
		}, "some-other-secret")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, constants.RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestOnlyRoles(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := newTestApp()

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/teacher-only", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, constants.RoleTeacher))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/teacher-only", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, constants.RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
