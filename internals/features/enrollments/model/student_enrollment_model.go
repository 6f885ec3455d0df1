package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentEnrollmentModel registers one student into one course+section.
// The (student, course, section) triple is unique at the storage layer.
type StudentEnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;column:student_id" json:"student_id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;column:course_id" json:"course_id"`
	SectionID  uuid.UUID `gorm:"type:uuid;not null;column:section_id" json:"section_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime;column:enrolled_at" json:"enrolled_at"`
}

func (StudentEnrollmentModel) TableName() string {
	return "student_enrollments"
}
