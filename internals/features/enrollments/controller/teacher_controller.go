package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/features/enrollments/dto"
	helper "ams_backend/internals/helpers"
)

type TeacherEnrollmentController struct {
	DB *gorm.DB
}

func NewTeacherEnrollmentController(db *gorm.DB) *TeacherEnrollmentController {
	return &TeacherEnrollmentController{DB: db}
}

// GetMyAllocations lists the calling teacher's allocations with resolved
// course and section names.
func (tc *TeacherEnrollmentController) GetMyAllocations(c *fiber.Ctx) error {
	teacherID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	rows := make([]dto.AllocationResponse, 0)
	err = tc.DB.Table("teacher_allocations AS ta").
		Select("ta.id, ta.course_id, c.name AS course_name, c.code AS course_code, ta.section_id, s.name AS section_name").
		Joins("JOIN courses AS c ON c.id = ta.course_id").
		Joins("JOIN sections AS s ON s.id = ta.section_id").
		Where("ta.teacher_id = ?", teacherID).
		Order("c.code ASC, s.name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Allocations not found")
	}
	return helper.Success(c, "OK", rows)
}

// GetStudentsForClass lists the students enrolled in one course+section.
func (tc *TeacherEnrollmentController) GetStudentsForClass(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	rows := make([]dto.ClassStudentResponse, 0)
	err = tc.DB.Table("student_enrollments AS se").
		Select("se.student_id, u.user_name AS student_name, u.email AS student_email").
		Joins("JOIN users AS u ON u.id = se.student_id").
		Where("se.course_id = ? AND se.section_id = ?", courseID, sectionID).
		Order("u.user_name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Students not found")
	}
	return helper.Success(c, "OK", rows)
}

// CurrentUserID resolves the authenticated user's id from the token claims
// stored in Locals.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr := helper.GetUserID(c)
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing identity claim")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}
