package dto

import (
	"github.com/google/uuid"
)

type AddTimetableEntryRequest struct {
	Day       string     `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string     `json:"start_time" validate:"required"`
	EndTime   string     `json:"end_time" validate:"required"`
	Room      string     `json:"room" validate:"max=50"`
	SectionID uuid.UUID  `json:"section_id" validate:"required"`
	CourseID  *uuid.UUID `json:"course_id"` // nil = break slot
}

// TimetableEntryResponse is one slot with the course name resolved; break
// slots carry "Break".
type TimetableEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	Day        string    `json:"day"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Room       string    `json:"room"`
	CourseName string    `json:"course_name"`
}

// TeacherSlotResponse is one slot of a teacher's weekly timetable.
type TeacherSlotResponse struct {
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Room        string `json:"room"`
	CourseName  string `json:"course_name"`
	SectionName string `json:"section_name"`
}
