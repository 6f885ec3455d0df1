package model

import (
	"time"

	"github.com/google/uuid"
)

type SectionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	AcademicSessionID uuid.UUID `gorm:"type:uuid;not null;column:academic_session_id" json:"academic_session_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SectionModel) TableName() string {
	return "sections"
}
