package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveWindowDefaults(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	start, endEx, err := ResolveWindow("", "", now)
	require.NoError(t, err)
	assert.Equal(t, day("2026-02-13"), start, "30 days back")
	assert.Equal(t, day("2026-03-16"), endEx, "today inclusive")
}

func TestResolveWindowExplicit(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	start, endEx, err := ResolveWindow("2026-01-01", "2026-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, day("2026-01-01"), start)
	assert.Equal(t, day("2026-02-01"), endEx, "end date plus one day")

	// Single-day window still spans one full day.
	start, endEx, err = ResolveWindow("2026-01-10", "2026-01-10", now)
	require.NoError(t, err)
	assert.Equal(t, day("2026-01-10"), start)
	assert.Equal(t, day("2026-01-11"), endEx)
}

func TestResolveWindowRejectsBadInput(t *testing.T) {
	now := time.Now()

	_, _, err := ResolveWindow("01/02/2026", "", now)
	assert.Error(t, err)

	_, _, err = ResolveWindow("", "not-a-date", now)
	assert.Error(t, err)

	_, _, err = ResolveWindow("2026-02-01", "2026-01-01", now)
	assert.Error(t, err, "end before start")
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, float64(0), Percentage(0, 0), "no records guard")
	assert.Equal(t, float64(100), Percentage(5, 0))
	assert.Equal(t, float64(0), Percentage(0, 5))
	assert.InDelta(t, 66.666, Percentage(2, 1), 0.01)
}

func TestBuildChart(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	records := []ClassRecord{
		{StudentID: alice, StudentName: "Alice", Date: day("2026-03-02"), Status: "Present"},
		{StudentID: bob, StudentName: "Bob", Date: day("2026-03-02"), Status: "Absent"},
		{StudentID: alice, StudentName: "Alice", Date: day("2026-03-01"), Status: "Present"},
	}

	chart := BuildChart(records)
	require.Len(t, chart, 2)
	assert.Equal(t, ChartRow{Date: "2026-03-01", Present: 1, Absent: 0}, chart[0], "dates ascending")
	assert.Equal(t, ChartRow{Date: "2026-03-02", Present: 1, Absent: 1}, chart[1])
}

func TestBuildChartEmpty(t *testing.T) {
	assert.Empty(t, BuildChart(nil))
}

func TestBuildStudentSummary(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	records := []ClassRecord{
		{StudentID: bob, StudentName: "Bob", Date: day("2026-03-01"), Status: "Absent"},
		{StudentID: alice, StudentName: "Alice", Date: day("2026-03-01"), Status: "Present"},
		{StudentID: alice, StudentName: "Alice", Date: day("2026-03-02"), Status: "Absent"},
		{StudentID: alice, StudentName: "Alice", Date: day("2026-03-03"), Status: "Present"},
	}

	summary := BuildStudentSummary(records)
	require.Len(t, summary, 2)

	assert.Equal(t, "Alice", summary[0].StudentName, "sorted by name")
	assert.Equal(t, 2, summary[0].TotalPresent)
	assert.Equal(t, 1, summary[0].TotalAbsent)
	assert.InDelta(t, 66.666, summary[0].Percentage, 0.01)

	assert.Equal(t, "Bob", summary[1].StudentName)
	assert.Equal(t, 0, summary[1].TotalPresent)
	assert.Equal(t, 1, summary[1].TotalAbsent)
	assert.Equal(t, float64(0), summary[1].Percentage)
}

func TestBuildCourseSummary(t *testing.T) {
	records := []StudentRecord{
		{CourseName: "Physics", Date: day("2026-03-01"), Status: "Present"},
		{CourseName: "Mathematics", Date: day("2026-03-01"), Status: "Present"},
		{CourseName: "Mathematics", Date: day("2026-03-02"), Status: "Absent"},
	}

	summary := BuildCourseSummary(records)
	require.Len(t, summary, 2)

	assert.Equal(t, "Mathematics", summary[0].CourseName, "sorted by course")
	assert.Equal(t, 1, summary[0].Present)
	assert.Equal(t, 1, summary[0].Absent)
	assert.Equal(t, float64(50), summary[0].Percentage)

	assert.Equal(t, "Physics", summary[1].CourseName)
	assert.Equal(t, float64(100), summary[1].Percentage)
}
