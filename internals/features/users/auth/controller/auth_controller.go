package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ams_backend/internals/configs"
	"ams_backend/internals/constants"
	authDTO "ams_backend/internals/features/users/auth/dto"
	"ams_backend/internals/features/users/auth/service"
	userDTO "ams_backend/internals/features/users/user/dto"
	userModel "ams_backend/internals/features/users/user/model"
	helper "ams_backend/internals/helpers"
)

// Login failures share one message so an attacker cannot probe which emails
// are registered.
const msgBadCredentials = "Invalid email or password"

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
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

	var count int64
	if err := ac.DB.Model(&userModel.UserModel{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email is already registered")
		}
		return helper.FromDBError(err, "User not found")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered successfully", userDTO.NewUserResponse(user))
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, msgBadCredentials)
		}
		return helper.FromDBError(err, msgBadCredentials)
	}
	if !service.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, msgBadCredentials)
	}

	token, err := service.CreateToken(user, configs.JWTSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", authDTO.LoginResponse{
		Token: token,
		Role:  user.Role.String(),
	})
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}
	if !service.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ac.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}

	return helper.Success(c, "Password changed successfully", nil)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.FromDBError(err, "User not found")
	}
	return helper.Success(c, "OK", userDTO.NewUserResponse(user))
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
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
