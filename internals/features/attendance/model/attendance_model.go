package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// StatusFromPresent maps the wire-level is_present flag onto the status enum.
func StatusFromPresent(isPresent bool) AttendanceStatus {
	if isPresent {
		return StatusPresent
	}
	return StatusAbsent
}

// AttendanceModel is one student's Present/Absent mark for one course on one
// calendar date. (student_id, course_id, date) is unique, backing the
// mark-twice-updates-once upsert.
type AttendanceModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      time.Time        `gorm:"type:date;not null" json:"date"`
	Status    AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	StudentID uuid.UUID        `gorm:"type:uuid;not null;column:student_id" json:"student_id"`
	CourseID  uuid.UUID        `gorm:"type:uuid;not null;column:course_id" json:"course_id"`
	SectionID uuid.UUID        `gorm:"type:uuid;not null;column:section_id" json:"section_id"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
