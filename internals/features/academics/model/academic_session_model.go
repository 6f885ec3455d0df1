package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicSessionModel maps the academic_sessions table. A session is the
// semester/term window that sections hang off of.
type AcademicSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AcademicSessionModel) TableName() string {
	return "academic_sessions"
}
