package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"ams_backend/internals/features/attendance/model"
	helper "ams_backend/internals/helpers"
)

// Report windows are half-open [start, end) on calendar dates; the exclusive
// end is the requested end date plus one day, so the full end date counts.
// One convention for every report endpoint.

const defaultWindowDays = 30

// ResolveWindow parses optional yyyy-MM-dd bounds. Missing start falls back
// to now-30d, missing end to today; end is returned exclusive.
func ResolveWindow(startStr, endStr string, now time.Time) (start, endExclusive time.Time, err error) {
	today := helper.TruncateToDay(now)

	start = today.AddDate(0, 0, -defaultWindowDays)
	if startStr != "" {
		start, err = helper.ParseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date must be yyyy-MM-dd")
		}
	}

	end := today
	if endStr != "" {
		end, err = helper.ParseDate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date must be yyyy-MM-dd")
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date must not be before start_date")
	}

	return start, end.AddDate(0, 0, 1), nil
}

// ClassRecord is one attendance row with the student resolved, as fetched
// for a class report.
type ClassRecord struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}

type ChartRow struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

type StudentSummaryRow struct {
	StudentName  string  `json:"student_name"`
	TotalPresent int     `json:"total_present"`
	TotalAbsent  int     `json:"total_absent"`
	Percentage   float64 `json:"percentage"`
}

// Percentage is 100*present/(present+absent), 0 when there are no records.
func Percentage(present, absent int) float64 {
	total := present + absent
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// BuildChart groups records per calendar date, ascending, counting both
// statuses for the frontend chart.
func BuildChart(records []ClassRecord) []ChartRow {
	byDate := make(map[string]*ChartRow)
	for _, r := range records {
		key := helper.FormatDate(r.Date)
		row, ok := byDate[key]
		if !ok {
			row = &ChartRow{Date: key}
			byDate[key] = row
		}
		if r.Status == string(model.StatusPresent) {
			row.Present++
		} else {
			row.Absent++
		}
	}

	out := make([]ChartRow, 0, len(byDate))
	for _, row := range byDate {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// BuildStudentSummary groups records per student, sorted by name, with the
// percentage guard applied.
func BuildStudentSummary(records []ClassRecord) []StudentSummaryRow {
	type agg struct {
		name    string
		present int
		absent  int
	}
	byStudent := make(map[uuid.UUID]*agg)
	for _, r := range records {
		a, ok := byStudent[r.StudentID]
		if !ok {
			a = &agg{name: r.StudentName}
			byStudent[r.StudentID] = a
		}
		if r.Status == string(model.StatusPresent) {
			a.present++
		} else {
			a.absent++
		}
	}

	out := make([]StudentSummaryRow, 0, len(byStudent))
	for _, a := range byStudent {
		out = append(out, StudentSummaryRow{
			StudentName:  a.name,
			TotalPresent: a.present,
			TotalAbsent:  a.absent,
			Percentage:   Percentage(a.present, a.absent),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentName < out[j].StudentName })
	return out
}

// StudentRecord is one of a student's own attendance rows with the course
// resolved.
type StudentRecord struct {
	CourseName string    `json:"course_name"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

type CourseSummaryRow struct {
	CourseName string  `json:"course_name"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// BuildCourseSummary groups a student's records per course, sorted by course
// name.
func BuildCourseSummary(records []StudentRecord) []CourseSummaryRow {
	type agg struct {
		present int
		absent  int
	}
	byCourse := make(map[string]*agg)
	for _, r := range records {
		a, ok := byCourse[r.CourseName]
		if !ok {
			a = &agg{}
			byCourse[r.CourseName] = a
		}
		if r.Status == string(model.StatusPresent) {
			a.present++
		} else {
			a.absent++
		}
	}

	out := make([]CourseSummaryRow, 0, len(byCourse))
	for name, a := range byCourse {
		out = append(out, CourseSummaryRow{
			CourseName: name,
			Present:    a.present,
			Absent:     a.absent,
			Percentage: Percentage(a.present, a.absent),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseName < out[j].CourseName })
	return out
}
