package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/timetable/controller"
)

func AdminTimetableRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTimetableController(db)

	r.Get("/timetable/:sectionId", ctrl.GetTimetable)
	r.Post("/timetable", ctrl.AddTimetableEntry)
	r.Delete("/timetable/:id", ctrl.DeleteTimetableEntry)
}

func TeacherTimetableRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherTimetableController(db)

	r.Get("/my-timetable", ctrl.GetMyTimetable)
}
