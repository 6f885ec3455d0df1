package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/attendance/dto"
	"ams_backend/internals/features/attendance/service"
	enrollmentController "ams_backend/internals/features/enrollments/controller"
	helper "ams_backend/internals/helpers"
)

type StudentAttendanceController struct {
	DB *gorm.DB
}

func NewStudentAttendanceController(db *gorm.DB) *StudentAttendanceController {
	return &StudentAttendanceController{DB: db}
}

// GetMyReport returns the calling student's raw marks (newest first) and a
// per-course summary. The window defaults to the trailing 30 days.
func (sc *StudentAttendanceController) GetMyReport(c *fiber.Ctx) error {
	studentID, err := enrollmentController.CurrentUserID(c)
	if err != nil {
		return err
	}
	start, endExclusive, err := service.ResolveWindow(c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	records := make([]service.StudentRecord, 0)
	err = sc.DB.Table("attendances AS a").
		Select("c.name AS course_name, a.date, a.status").
		Joins("JOIN courses AS c ON c.id = a.course_id").
		Where("a.student_id = ? AND a.date >= ? AND a.date < ?", studentID, start, endExclusive).
		Order("a.date DESC, c.name ASC").
		Scan(&records).Error
	if err != nil {
		return helper.FromDBError(err, "Attendance not found")
	}

	out := make([]dto.StudentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.StudentRecordResponse{
			CourseName: r.CourseName,
			Date:       helper.FormatDate(r.Date),
			Status:     r.Status,
		})
	}
	return helper.Success(c, "OK", dto.StudentReportResponse{
		Records: out,
		Summary: service.BuildCourseSummary(records),
	})
}
