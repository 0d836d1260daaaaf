package handlers

import (
	"testing"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
)

func seededStore() *MemStore {
	store := NewMemStore()
	store.Seed()
	return store
}

func TestMemStore_DateFilterIgnoresTimestampSuffix(t *testing.T) {
	store := seededStore()

	created := store.CreateClass(models.Class{
		Subject:    "Biology",
		Date:       "2025-05-10T08:00:00Z",
		Time:       "08:00",
		Duration:   45,
		TeacherID:  "1",
		StudentIDs: []string{"2"},
	})
	if created.ID == "" {
		t.Fatal("store did not assign an id")
	}

	classes := store.ListClassesByDate("2025-05-10")
	if len(classes) != 4 {
		t.Errorf("got %d classes, want 4 (3 seeded + 1 with timestamp date)", len(classes))
	}
}

func TestMemStore_RosterFilter(t *testing.T) {
	store := seededStore()

	if got := len(store.ListClassesForStudent("2")); got != 3 {
		t.Errorf("student 2: got %d classes, want 3", got)
	}
	if got := len(store.ListClassesForStudentOnDate("2", "2025-05-10")); got != 2 {
		t.Errorf("student 2 on 2025-05-10: got %d classes, want 2", got)
	}
	if got := len(store.ListClassesForStudent("unknown")); got != 0 {
		t.Errorf("unknown student: got %d classes, want 0", got)
	}
}

func TestMemStore_UpdateStudentKeepsID(t *testing.T) {
	store := seededStore()

	updated, ok := store.UpdateStudent("2", models.Student{
		Name:  "Jane Doe",
		Email: "student@example.com",
		Major: "Software Engineering",
		Year:  3,
	})
	if !ok {
		t.Fatal("update reported missing student")
	}
	if updated.ID != "2" {
		t.Errorf("ID = %q, want immutable id 2", updated.ID)
	}
	if updated.Major != "Software Engineering" {
		t.Errorf("Major = %q, update not applied", updated.Major)
	}
}

func TestMemStore_DeleteMissing(t *testing.T) {
	store := seededStore()

	if store.DeleteClass("no-such-id") {
		t.Error("DeleteClass reported success for missing id")
	}
	if store.DeleteStudent("no-such-id") {
		t.Error("DeleteStudent reported success for missing id")
	}
}

func TestMemStore_FindStudentByEmail(t *testing.T) {
	store := seededStore()

	student, ok := store.FindStudentByEmail("STUDENT@example.com")
	if !ok {
		t.Fatal("email lookup is case-sensitive, want case-insensitive match")
	}
	if student.ID != "2" {
		t.Errorf("ID = %q, want 2", student.ID)
	}

	if _, ok := store.FindStudentByEmail("missing@example.com"); ok {
		t.Error("found a student for an unknown email")
	}
}
