package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ams_backend/internals/features/attendance/dto"
	"ams_backend/internals/features/attendance/model"
	"ams_backend/internals/features/attendance/service"
	enrollModel "ams_backend/internals/features/enrollments/model"
	helper "ams_backend/internals/helpers"
)

type TeacherAttendanceController struct {
	DB *gorm.DB
}

func NewTeacherAttendanceController(db *gorm.DB) *TeacherAttendanceController {
	return &TeacherAttendanceController{DB: db}
}

// conflictColumns is the unique trio an attendance mark upserts on. The date
// is truncated to the day, so marking the same student twice on one date
// updates the first row instead of inserting a second.
var conflictColumns = []clause.Column{
	{Name: "student_id"}, {Name: "course_id"}, {Name: "date"},
}

// MarkAttendance records one student's mark for one date, updating the
// existing row when the class was already marked that day.
func (ac *TeacherAttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := helper.ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be yyyy-MM-dd")
	}
	if err := ac.requireEnrollment(req.StudentID, req.CourseID, req.SectionID); err != nil {
		return err
	}

	record := model.AttendanceModel{
		Date:      day,
		Status:    model.StatusFromPresent(*req.IsPresent),
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		SectionID: req.SectionID,
	}
	err = ac.DB.Clauses(clause.OnConflict{
		Columns:   conflictColumns,
		DoUpdates: clause.AssignmentColumns([]string{"status", "section_id", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return helper.FromDBError(err, "Attendance not found")
	}
	return helper.Success(c, "Attendance marked", record)
}

// MarkAttendanceBatch marks a whole class for one date inside a single
// transaction. One bad entry rolls back the lot.
func (ac *TeacherAttendanceController) MarkAttendanceBatch(c *fiber.Ctx) error {
	var req dto.MarkAttendanceBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := helper.ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be yyyy-MM-dd")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Entries {
			var enrollment enrollModel.StudentEnrollmentModel
			err := tx.First(&enrollment,
				"student_id = ? AND course_id = ? AND section_id = ?",
				entry.StudentID, req.CourseID, req.SectionID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "Student is not enrolled in this class")
				}
				return err
			}

			record := model.AttendanceModel{
				Date:      day,
				Status:    model.StatusFromPresent(*entry.IsPresent),
				StudentID: entry.StudentID,
				CourseID:  req.CourseID,
				SectionID: req.SectionID,
			}
			err = tx.Clauses(clause.OnConflict{
				Columns:   conflictColumns,
				DoUpdates: clause.AssignmentColumns([]string{"status", "section_id", "updated_at"}),
			}).Create(&record).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr
		}
		return helper.FromDBError(err, "Attendance not found")
	}
	return helper.Success(c, "Attendance marked for class", fiber.Map{
		"date":  helper.FormatDate(day),
		"count": len(req.Entries),
	})
}

// GetClassAttendance lists a class's marks newest date first with student
// names resolved.
func (ac *TeacherAttendanceController) GetClassAttendance(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	type row struct {
		ID          uuid.UUID
		StudentID   uuid.UUID
		StudentName string
		Date        time.Time
		Status      string
	}
	rows := make([]row, 0)
	err = ac.DB.Table("attendances AS a").
		Select("a.id, a.student_id, u.user_name AS student_name, a.date, a.status").
		Joins("JOIN users AS u ON u.id = a.student_id").
		Where("a.course_id = ? AND a.section_id = ?", courseID, sectionID).
		Order("a.date DESC, u.user_name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Attendance not found")
	}

	out := make([]dto.AttendanceRecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AttendanceRecordResponse{
			ID:          r.ID,
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			Date:        helper.FormatDate(r.Date),
			Status:      r.Status,
		})
	}
	return helper.Success(c, "OK", out)
}

// GetAttendanceReport aggregates a class's marks over an inclusive date
// window into per-date chart rows and per-student summary rows.
func (ac *TeacherAttendanceController) GetAttendanceReport(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	sectionID, err := uuid.Parse(c.Query("section_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}
	start, endExclusive, err := service.ResolveWindow(c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	records := make([]service.ClassRecord, 0)
	err = ac.DB.Table("attendances AS a").
		Select("a.student_id, u.user_name AS student_name, a.date, a.status").
		Joins("JOIN users AS u ON u.id = a.student_id").
		Where("a.course_id = ? AND a.section_id = ? AND a.date >= ? AND a.date < ?",
			courseID, sectionID, start, endExclusive).
		Scan(&records).Error
	if err != nil {
		return helper.FromDBError(err, "Attendance not found")
	}

	return helper.Success(c, "OK", dto.ClassReportResponse{
		Chart:   service.BuildChart(records),
		Summary: service.BuildStudentSummary(records),
	})
}

func (ac *TeacherAttendanceController) requireEnrollment(studentID, courseID, sectionID uuid.UUID) error {
	var enrollment enrollModel.StudentEnrollmentModel
	err := ac.DB.First(&enrollment,
		"student_id = ? AND course_id = ? AND section_id = ?",
		studentID, courseID, sectionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Student is not enrolled in this class")
		}
		return helper.FromDBError(err, "Enrollment not found")
	}
	return nil
}
