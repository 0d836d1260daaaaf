package validator

// ===== CLASS DTOs =====

// ClassCreateRequest is the payload for scheduling a class. The id is absent
// on purpose: id assignment belongs solely to the backend.
type ClassCreateRequest struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Duration int    `json:"duration" validate:"required,min=5,max=480"`

	TeacherID  string   `json:"teacherId" validate:"required"`
	StudentIDs []string `json:"studentIds" validate:"required,min=1,dive,required"`

	Room        string   `json:"room,omitempty" validate:"omitempty,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    string   `json:"category,omitempty" validate:"omitempty,oneof='Mathematics' 'Science' 'Computer Science' 'Literature' 'History' 'Language' 'Arts' 'Sports'"`
	Materials   []string `json:"materials,omitempty" validate:"omitempty,dive,max=300"`
}

// ===== STUDENT DTOs =====

type StudentCreateRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Major     string `json:"major,omitempty" validate:"omitempty,max=100"`
	Year      int    `json:"year,omitempty" validate:"omitempty,min=1,max=8"`
	StudentID string `json:"studentId,omitempty" validate:"omitempty,max=50"`
}

// StudentUpdateRequest replaces the full resource; all fields are sent.
type StudentUpdateRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Major     string `json:"major,omitempty" validate:"omitempty,max=100"`
	Year      int    `json:"year,omitempty" validate:"omitempty,min=1,max=8"`
	StudentID string `json:"studentId,omitempty" validate:"omitempty,max=50"`
}
