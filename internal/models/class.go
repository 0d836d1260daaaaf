package models

type ClassCategory string

const (
	CategoryMathematics     ClassCategory = "Mathematics"
	CategoryScience         ClassCategory = "Science"
	CategoryComputerScience ClassCategory = "Computer Science"
	CategoryLiterature      ClassCategory = "Literature"
	CategoryHistory         ClassCategory = "History"
	CategoryLanguage        ClassCategory = "Language"
	CategoryArts            ClassCategory = "Arts"
	CategorySports          ClassCategory = "Sports"
)

// Class is a scheduled teaching session. Date is an ISO 8601 calendar date
// ("2006-01-02"), Time a zero-padded local time of day ("15:04") and Duration
// is in minutes. Date+Time+Duration define a half-open interval; overlap
// between classes is never validated.
type Class struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`

	// TeacherID references the teacher that scheduled the session.
	TeacherID string `json:"teacherId"`

	// StudentIDs is the roster. Order carries no meaning. Membership is not
	// verified client-side.
	StudentIDs []string `json:"studentIds"`

	Room        string        `json:"room,omitempty"`
	Description string        `json:"description,omitempty"`
	Category    ClassCategory `json:"category,omitempty"`
	Materials   []string      `json:"materials,omitempty"`
}
