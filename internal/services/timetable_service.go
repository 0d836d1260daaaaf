package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
)

// DateLayout is the calendar-date wire format used throughout the backend.
const DateLayout = "2006-01-02"

// BuildDailyTimetable selects every class occurring on the given calendar
// day, projects each into a display entry and orders the result ascending by
// start time. The function is pure: equal inputs always yield an identical
// sequence.
//
// Sorting compares the raw time strings lexicographically, which is correct
// only because class times are zero-padded "15:04" values.
func BuildDailyTimetable(classes []models.Class, day time.Time) models.DailyTimetable {
	entries := make([]models.TimetableEntry, 0, len(classes))
	for _, class := range classes {
		if !sameCalendarDay(class.Date, day) {
			continue
		}

		room := class.Room
		if room == "" {
			room = "TBD"
		}

		entries = append(entries, models.TimetableEntry{
			ID:       class.ID,
			Subject:  class.Subject,
			Time:     class.Time,
			Duration: class.Duration,
			Room:     room,
			// Raw teacher id; resolving a display name is the caller's job.
			Teacher: class.TeacherID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	return models.DailyTimetable{
		Date:    day.Format(DateLayout),
		Classes: entries,
	}
}

// sameCalendarDay compares only the calendar-day component of a class date
// string. Time-of-day and zone offsets within the string are ignored.
func sameCalendarDay(dateStr string, day time.Time) bool {
	parsed, err := ParseClassDate(dateStr)
	if err != nil {
		return false
	}

	y1, m1, d1 := parsed.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ParseClassDate accepts a plain calendar date or a full timestamp and
// returns the wall-clock date as written, without zone normalization.
func ParseClassDate(value string) (time.Time, error) {
	layouts := []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	// Unrecognized suffix; fall back to the date prefix.
	if len(value) > len(DateLayout) {
		if parsed, err := time.Parse(DateLayout, value[:len(DateLayout)]); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable class date %q", value)
}
