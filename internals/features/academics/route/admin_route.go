package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/academics/controller"
)

// AdminAcademicRoutes mounts session/course/section management plus the
// dashboard counts under the admin group.
func AdminAcademicRoutes(r fiber.Router, db *gorm.DB) {
	sessions := controller.NewSessionController(db)
	courses := controller.NewCourseController(db)
	sections := controller.NewSectionController(db)
	dashboard := controller.NewDashboardController(db)

	r.Get("/sessions", sessions.GetAllSessions)
	r.Post("/sessions", sessions.CreateSession)
	r.Delete("/sessions/:id", sessions.DeleteSession)

	r.Get("/courses", courses.GetAllCourses)
	r.Post("/courses", courses.CreateCourse)
	r.Delete("/courses/:id", courses.DeleteCourse)

	r.Get("/sections", sections.GetAllSections)
	r.Post("/sections", sections.CreateSection)
	r.Delete("/sections/:id", sections.DeleteSection)

	r.Get("/dashboard", dashboard.GetDashboard)
}
