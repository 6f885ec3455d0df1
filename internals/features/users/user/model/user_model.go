package model

import (
	"time"

	"github.com/google/uuid"

	"ams_backend/internals/constants"
)

// UserModel maps the users table. One table holds all three roles; the role
// column decides which endpoint group an account may use.
type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName     string         `gorm:"size:100;not null;column:user_name" json:"user_name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null;column:password_hash" json:"-"`
	Role         constants.Role `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
