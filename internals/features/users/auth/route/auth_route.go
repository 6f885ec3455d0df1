package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/users/auth/controller"
	"ams_backend/internals/middlewares"
	authMiddleware "ams_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public register/login endpoints and the
// token-protected account endpoints under /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	private := grp.Group("", authMiddleware.AuthMiddleware())
	private.Post("/change-password", ctrl.ChangePassword)
	private.Get("/me", ctrl.Me)
}
