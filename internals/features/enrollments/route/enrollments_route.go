package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/enrollments/controller"
)

func AdminEnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminEnrollmentController(db)

	r.Post("/assign-teacher", ctrl.AssignTeacher)
	r.Post("/enroll-student", ctrl.EnrollStudent)
	r.Get("/assignments", ctrl.GetAssignments)
}

func TeacherEnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherEnrollmentController(db)

	r.Get("/my-allocations", ctrl.GetMyAllocations)
	r.Get("/students/:courseId/:sectionId", ctrl.GetStudentsForClass)
}

func StudentEnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentEnrollmentController(db)

	r.Get("/my-courses", ctrl.GetMyCourses)
}
