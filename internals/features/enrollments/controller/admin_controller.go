package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/constants"
	academicModel "ams_backend/internals/features/academics/model"
	"ams_backend/internals/features/enrollments/dto"
	"ams_backend/internals/features/enrollments/model"
	userModel "ams_backend/internals/features/users/user/model"
	helper "ams_backend/internals/helpers"
)

type AdminEnrollmentController struct {
	DB *gorm.DB
}

func NewAdminEnrollmentController(db *gorm.DB) *AdminEnrollmentController {
	return &AdminEnrollmentController{DB: db}
}

// AssignTeacher creates a teacher allocation after verifying the target user
// really is a teacher and the offering exists. Duplicates are rejected here,
// not in the calling UI.
func (ec *AdminEnrollmentController) AssignTeacher(c *fiber.Ctx) error {
	var req dto.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ec.requireUserWithRole(req.TeacherID, constants.RoleTeacher, "Selected user is not a teacher"); err != nil {
		return err
	}
	if err := ec.requireClass(req.CourseID, req.SectionID); err != nil {
		return err
	}

	allocation := model.TeacherAllocationModel{
		TeacherID: req.TeacherID,
		CourseID:  req.CourseID,
		SectionID: req.SectionID,
	}
	if err := ec.DB.Create(&allocation).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Teacher is already assigned to this class")
		}
		return helper.FromDBError(err, "Allocation not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher assigned", allocation)
}

// EnrollStudent mirrors AssignTeacher for student enrollments.
func (ec *AdminEnrollmentController) EnrollStudent(c *fiber.Ctx) error {
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ec.requireUserWithRole(req.StudentID, constants.RoleStudent, "Selected user is not a student"); err != nil {
		return err
	}
	if err := ec.requireClass(req.CourseID, req.SectionID); err != nil {
		return err
	}

	enrollment := model.StudentEnrollmentModel{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		SectionID: req.SectionID,
	}
	if err := ec.DB.Create(&enrollment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Student is already enrolled in this class")
		}
		return helper.FromDBError(err, "Enrollment not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student enrolled", enrollment)
}

// GetAssignments returns all allocations and all enrollments, resolved to
// display names, as two parallel lists.
func (ec *AdminEnrollmentController) GetAssignments(c *fiber.Ctx) error {
	teachers := make([]dto.AssignmentRow, 0)
	err := ec.DB.Table("teacher_allocations AS ta").
		Select("ta.id, 'Teacher' AS type, u.user_name AS name, c.name AS course, s.name AS section").
		Joins("JOIN users AS u ON u.id = ta.teacher_id").
		Joins("JOIN courses AS c ON c.id = ta.course_id").
		Joins("JOIN sections AS s ON s.id = ta.section_id").
		Order("u.user_name ASC").
		Scan(&teachers).Error
	if err != nil {
		return helper.FromDBError(err, "Assignments not found")
	}

	students := make([]dto.AssignmentRow, 0)
	err = ec.DB.Table("student_enrollments AS se").
		Select("se.id, 'Student' AS type, u.user_name AS name, c.name AS course, s.name AS section").
		Joins("JOIN users AS u ON u.id = se.student_id").
		Joins("JOIN courses AS c ON c.id = se.course_id").
		Joins("JOIN sections AS s ON s.id = se.section_id").
		Order("u.user_name ASC").
		Scan(&students).Error
	if err != nil {
		return helper.FromDBError(err, "Assignments not found")
	}

	return helper.Success(c, "OK", dto.AssignmentsResponse{
		Teachers: teachers,
		Students: students,
	})
}

func (ec *AdminEnrollmentController) requireUserWithRole(id uuid.UUID, role constants.Role, wrongRoleMsg string) error {
	var user userModel.UserModel
	if err := ec.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "User does not exist")
		}
		return helper.FromDBError(err, "User not found")
	}
	if user.Role != role {
		return fiber.NewError(fiber.StatusBadRequest, wrongRoleMsg)
	}
	return nil
}

func (ec *AdminEnrollmentController) requireClass(courseID, sectionID uuid.UUID) error {
	var course academicModel.CourseModel
	if err := ec.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return helper.FromDBError(err, "Course not found")
	}
	var section academicModel.SectionModel
	if err := ec.DB.First(&section, "id = ?", sectionID).Error; err != nil {
		return helper.FromDBError(err, "Section not found")
	}
	return nil
}
