package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/users/user/controller"
)

// AdminUserRoutes mounts user management under the admin group. The group
// already carries auth + role middleware.
func AdminUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	r.Get("/users", ctrl.GetAllUsers)
	r.Post("/users", ctrl.CreateUser)
	r.Delete("/users/:id", ctrl.DeleteUser)
}
