package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/attendance/controller"
)

func TeacherAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherAttendanceController(db)

	r.Post("/mark-attendance", ctrl.MarkAttendance)
	r.Post("/mark-attendance/batch", ctrl.MarkAttendanceBatch)
	r.Get("/attendance/:courseId/:sectionId", ctrl.GetClassAttendance)
	r.Get("/reports", ctrl.GetAttendanceReport)
}

func StudentAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentAttendanceController(db)

	r.Get("/report", ctrl.GetMyReport)
}
