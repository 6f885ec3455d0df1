package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "ams_backend/internals/features/enrollments/controller"
	"ams_backend/internals/features/timetable/dto"
	"ams_backend/internals/features/timetable/service"
	helper "ams_backend/internals/helpers"
)

type TeacherTimetableController struct {
	DB *gorm.DB
}

func NewTeacherTimetableController(db *gorm.DB) *TeacherTimetableController {
	return &TeacherTimetableController{DB: db}
}

// GetMyTimetable returns the slots of the classes the calling teacher is
// allocated to. Joining on the allocation's exact (course, section) pair
// keeps out slots a section has for courses this teacher does not teach,
// and the inner join on courses drops break slots.
func (tc *TeacherTimetableController) GetMyTimetable(c *fiber.Ctx) error {
	teacherID, err := enrollmentController.CurrentUserID(c)
	if err != nil {
		return err
	}

	rows := make([]dto.TeacherSlotResponse, 0)
	err = tc.DB.Table("timetable_entries AS te").
		Select("te.day, te.start_time, te.end_time, te.room, c.name AS course_name, s.name AS section_name").
		Joins("JOIN teacher_allocations AS ta ON ta.course_id = te.course_id AND ta.section_id = te.section_id").
		Joins("JOIN courses AS c ON c.id = te.course_id").
		Joins("JOIN sections AS s ON s.id = te.section_id").
		Where("ta.teacher_id = ?", teacherID).
		Order(service.WeekdayOrderSQL("te.day") + ", te.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Timetable not found")
	}
	return helper.Success(c, "OK", rows)
}
