package dto

import (
	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Code        string `json:"code" validate:"required,max=30"`
	CreditHours int    `json:"credit_hours" validate:"gte=0,lte=12"`
}

type CreateSectionRequest struct {
	Name              string    `json:"name" validate:"required,max=100"`
	AcademicSessionID uuid.UUID `json:"academic_session_id" validate:"required"`
}

// SectionResponse carries the session name resolved for readability.
type SectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	SessionName string    `json:"session_name"`
}

type DashboardResponse struct {
	Teachers int64 `json:"teachers"`
	Students int64 `json:"students"`
	Sessions int64 `json:"sessions"`
	Courses  int64 `json:"courses"`
	Sections int64 `json:"sections"`
}
