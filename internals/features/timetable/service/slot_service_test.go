package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:30", 0, false},
		{"09:3", 0, false},
		{"0930", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.minutes, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                         string
		aStart, aEnd, bStart, bEnd   int
		want                         bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"partial overlap", 540, 600, 570, 630, true},
		{"contained", 540, 600, 550, 560, true},
		{"containing", 550, 560, 540, 600, true},
		{"one minute overlap", 540, 600, 599, 660, true},
		{"back to back", 540, 600, 600, 660, false},
		{"back to back reversed", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 700, 760, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "must be symmetric")
		})
	}
}

func TestValidateSlot(t *testing.T) {
	start, end, err := ValidateSlot("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 540, start)
	assert.Equal(t, 630, end)

	_, _, err = ValidateSlot("10:00", "10:00")
	assert.Error(t, err, "zero-length slot")

	_, _, err = ValidateSlot("11:00", "10:00")
	assert.Error(t, err, "inverted slot")

	_, _, err = ValidateSlot("9am", "10:00")
	assert.Error(t, err)
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 1, WeekdayIndex("Monday"))
	assert.Equal(t, 7, WeekdayIndex("Sunday"))
	assert.Equal(t, 0, WeekdayIndex("Funday"))
}
