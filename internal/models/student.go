package models

// Student is an identity record owned by the backend; the client only ever
// holds a cached copy. ID is assigned by the backend and immutable.
type Student struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Major string `json:"major,omitempty"`
	Year  int    `json:"year,omitempty"`

	// StudentID is the external student number. The student login flow uses
	// it as the login secret.
	StudentID string `json:"studentId,omitempty"`
}
