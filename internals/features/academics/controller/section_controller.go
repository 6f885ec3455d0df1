package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/features/academics/dto"
	"ams_backend/internals/features/academics/model"
	helper "ams_backend/internals/helpers"
)

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

func (sc *SectionController) GetAllSections(c *fiber.Ctx) error {
	var rows []dto.SectionResponse
	err := sc.DB.Table("sections AS s").
		Select("s.id, s.name, ses.name AS session_name").
		Joins("JOIN academic_sessions AS ses ON ses.id = s.academic_session_id").
		Order("ses.start_date DESC, s.name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Section not found")
	}
	return helper.Success(c, "OK", rows)
}

func (sc *SectionController) CreateSection(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.AcademicSessionModel
	if err := sc.DB.First(&session, "id = ?", req.AcademicSessionID).Error; err != nil {
		return helper.FromDBError(err, "Academic session not found")
	}

	section := model.SectionModel{
		Name:              req.Name,
		AcademicSessionID: session.ID,
	}
	if err := sc.DB.Create(&section).Error; err != nil {
		return helper.FromDBError(err, "Section not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Section created", section)
}

func (sc *SectionController) DeleteSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	var section model.SectionModel
	if err := sc.DB.First(&section, "id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Section not found")
	}
	if err := sc.DB.Delete(&section).Error; err != nil {
		return helper.FromDBError(err, "Section not found")
	}
	return helper.Success(c, "Section deleted", nil)
}
