package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/constants"
	"ams_backend/internals/features/academics/dto"
	"ams_backend/internals/features/academics/model"
	userModel "ams_backend/internals/features/users/user/model"
	helper "ams_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard returns the entity counts the admin landing page renders.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	var out dto.DashboardResponse

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&out.Teachers, dc.DB.Model(&userModel.UserModel{}).Where("role = ?", constants.RoleTeacher)},
		{&out.Students, dc.DB.Model(&userModel.UserModel{}).Where("role = ?", constants.RoleStudent)},
		{&out.Sessions, dc.DB.Model(&model.AcademicSessionModel{})},
		{&out.Courses, dc.DB.Model(&model.CourseModel{})},
		{&out.Sections, dc.DB.Model(&model.SectionModel{})},
	}
	for _, cnt := range counts {
		if err := cnt.query.Count(cnt.dest).Error; err != nil {
			return helper.FromDBError(err, "Dashboard data not found")
		}
	}

	return helper.Success(c, "OK", out)
}
