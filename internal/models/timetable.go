package models

// TimetableEntry is a view-model projection of a Class for one day. It is
// derived on demand and never persisted remotely.
type TimetableEntry struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`

	// Room defaults to "TBD" when the class has none.
	Room string `json:"room"`

	// Teacher carries the raw teacher id; resolving it to a display name is
	// the caller's concern.
	Teacher string `json:"teacher,omitempty"`
}

// DailyTimetable is the per-day, time-ordered view of a set of classes.
// Entries are sorted ascending by their "15:04" time strings.
type DailyTimetable struct {
	// Date is the target day formatted "2006-01-02".
	Date    string           `json:"date"`
	Classes []TimetableEntry `json:"classes"`
}
