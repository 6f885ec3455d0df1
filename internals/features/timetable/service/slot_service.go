package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Slots are half-open [start, end) intervals in minutes from midnight, so
// back-to-back slots sharing a boundary never conflict.

// ParseClock parses a zero-padded "HH:mm" value into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("time %q must be HH:mm", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("time %q must be HH:mm", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q must be HH:mm", s)
	}
	return h*60 + m, nil
}

// Overlaps reports whether two half-open intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// ValidateSlot checks both clock values and that the slot has positive length.
// It returns the parsed minutes for reuse in the conflict scan.
func ValidateSlot(startTime, endTime string) (start, end int, err error) {
	start, err = ParseClock(startTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(endTime)
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("start_time must be before end_time")
	}
	return start, end, nil
}

var weekdayOrder = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// WeekdayIndex returns the 1-based position of a weekday name, 0 for
// anything else.
func WeekdayIndex(day string) int {
	return weekdayOrder[day]
}

// WeekdayOrderSQL builds the ORDER BY expression that sorts a weekday-name
// column in calendar order rather than alphabetically.
func WeekdayOrderSQL(col string) string {
	return "CASE " + col +
		" WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3" +
		" WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6" +
		" ELSE 7 END"
}
