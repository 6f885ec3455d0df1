package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/constants"
	"ams_backend/internals/features/users/auth/service"
	"ams_backend/internals/features/users/user/dto"
	"ams_backend/internals/features/users/user/model"
	helper "ams_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := uc.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}
	return helper.Success(c, "OK", dto.NewUserResponses(users))
}

func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, err := constants.ParseRole(req.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown role")
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email is already registered")
		}
		return helper.FromDBError(err, "User not found")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.NewUserResponse(user))
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}
	if err := uc.DB.Delete(&user).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}
	return helper.Success(c, "User deleted", nil)
}
