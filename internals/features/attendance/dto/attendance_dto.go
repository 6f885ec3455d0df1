package dto

import (
	"github.com/google/uuid"

	"ams_backend/internals/features/attendance/service"
)

// IsPresent is a pointer so the required rule can tell an explicit false
// from a missing field.
type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	IsPresent *bool     `json:"is_present" validate:"required"`
}

type BatchAttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	IsPresent *bool     `json:"is_present" validate:"required"`
}

// MarkAttendanceBatchRequest marks a whole class for one date in a single
// transaction.
type MarkAttendanceBatchRequest struct {
	CourseID  uuid.UUID              `json:"course_id" validate:"required"`
	SectionID uuid.UUID              `json:"section_id" validate:"required"`
	Date      string                 `json:"date" validate:"required"`
	Entries   []BatchAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type AttendanceRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
}

type ClassReportResponse struct {
	Chart   []service.ChartRow          `json:"chart"`
	Summary []service.StudentSummaryRow `json:"summary"`
}

type StudentRecordResponse struct {
	CourseName string `json:"course_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type StudentReportResponse struct {
	Records []StudentRecordResponse    `json:"records"`
	Summary []service.CourseSummaryRow `json:"summary"`
}
