package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/features/academics/dto"
	"ams_backend/internals/features/academics/model"
	helper "ams_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := cc.DB.Order("code ASC").Find(&courses).Error; err != nil {
		return helper.FromDBError(err, "Course not found")
	}
	return helper.Success(c, "OK", courses)
}

func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		Name:        req.Name,
		Code:        req.Code,
		CreditHours: req.CreditHours,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return helper.FromDBError(err, "Course not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", course)
}

func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var course model.CourseModel
	if err := cc.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Course not found")
	}
	if err := cc.DB.Delete(&course).Error; err != nil {
		return helper.FromDBError(err, "Course not found")
	}
	return helper.Success(c, "Course deleted", nil)
}
