package dto

import (
	"github.com/google/uuid"
)

type AssignTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
}

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
}

// AssignmentRow is one allocation or enrollment resolved to display names.
type AssignmentRow struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Name    string    `json:"name"`
	Course  string    `json:"course"`
	Section string    `json:"section"`
}

type AssignmentsResponse struct {
	Teachers []AssignmentRow `json:"teachers"`
	Students []AssignmentRow `json:"students"`
}

// AllocationResponse is a teacher's own allocation with resolved names.
type AllocationResponse struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseName  string    `json:"course_name"`
	CourseCode  string    `json:"course_code"`
	SectionID   uuid.UUID `json:"section_id"`
	SectionName string    `json:"section_name"`
}

// ClassStudentResponse is one enrolled student of a course+section.
type ClassStudentResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
}

// MyCourseResponse is a student's enrollment with the allocated teacher
// resolved; TeacherName falls back to "TBA" when no allocation exists.
type MyCourseResponse struct {
	CourseID    uuid.UUID `json:"course_id"`
	CourseName  string    `json:"course_name"`
	CourseCode  string    `json:"course_code"`
	SectionName string    `json:"section_name"`
	TeacherName string    `json:"teacher_name"`
}
