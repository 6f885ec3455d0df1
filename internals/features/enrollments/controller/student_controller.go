package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/features/enrollments/dto"
	helper "ams_backend/internals/helpers"
)

type StudentEnrollmentController struct {
	DB *gorm.DB
}

func NewStudentEnrollmentController(db *gorm.DB) *StudentEnrollmentController {
	return &StudentEnrollmentController{DB: db}
}

// GetMyCourses lists the calling student's enrollments with course, section
// and allocated teacher resolved. Unallocated offerings show "TBA".
func (sc *StudentEnrollmentController) GetMyCourses(c *fiber.Ctx) error {
	studentID, err := CurrentUserID(c)
	if err != nil {
		return err
	}

	rows := make([]dto.MyCourseResponse, 0)
	err = sc.DB.Table("student_enrollments AS se").
		Select("se.course_id, c.name AS course_name, c.code AS course_code, s.name AS section_name, COALESCE(t.user_name, 'TBA') AS teacher_name").
		Joins("JOIN courses AS c ON c.id = se.course_id").
		Joins("JOIN sections AS s ON s.id = se.section_id").
		Joins("LEFT JOIN teacher_allocations AS ta ON ta.course_id = se.course_id AND ta.section_id = se.section_id").
		Joins("LEFT JOIN users AS t ON t.id = ta.teacher_id").
		Where("se.student_id = ?", studentID).
		Order("c.code ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Courses not found")
	}
	return helper.Success(c, "OK", rows)
}
