package model

import (
	"time"

	"github.com/google/uuid"
)

// TimetableEntryModel is one weekly slot in a section's timetable. A nil
// CourseID marks a break slot.
type TimetableEntryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Day       string     `gorm:"size:10;not null" json:"day"`
	StartTime string     `gorm:"size:5;not null;column:start_time" json:"start_time"`
	EndTime   string     `gorm:"size:5;not null;column:end_time" json:"end_time"`
	Room      string     `gorm:"size:50;not null;default:''" json:"room"`
	SectionID uuid.UUID  `gorm:"type:uuid;not null;column:section_id" json:"section_id"`
	CourseID  *uuid.UUID `gorm:"type:uuid;column:course_id" json:"course_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}
