package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Code        string    `gorm:"size:30;not null" json:"code"`
	CreditHours int       `gorm:"not null;default:0;column:credit_hours" json:"credit_hours"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
