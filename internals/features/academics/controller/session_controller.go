package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/features/academics/dto"
	"ams_backend/internals/features/academics/model"
	helper "ams_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

func (sc *SessionController) GetAllSessions(c *fiber.Ctx) error {
	var sessions []model.AcademicSessionModel
	if err := sc.DB.Order("start_date DESC").Find(&sessions).Error; err != nil {
		return helper.FromDBError(err, "Session not found")
	}
	return helper.Success(c, "OK", sessions)
}

func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "start_date must be yyyy-MM-dd")
	}
	end, err := helper.ParseDate(req.EndDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must be yyyy-MM-dd")
	}
	if end.Before(start) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	session := model.AcademicSessionModel{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		return helper.FromDBError(err, "Session not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session created", session)
}

func (sc *SessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session ID")
	}

	var session model.AcademicSessionModel
	if err := sc.DB.First(&session, "id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Session not found")
	}
	if err := sc.DB.Delete(&session).Error; err != nil {
		return helper.FromDBError(err, "Session not found")
	}
	return helper.Success(c, "Session deleted", nil)
}
