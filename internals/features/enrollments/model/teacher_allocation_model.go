package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherAllocationModel links one teacher to one course+section offering.
// The (teacher, course, section) triple is unique at the storage layer.
type TeacherAllocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;column:teacher_id" json:"teacher_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;column:course_id" json:"course_id"`
	SectionID uuid.UUID `gorm:"type:uuid;not null;column:section_id" json:"section_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeacherAllocationModel) TableName() string {
	return "teacher_allocations"
}
