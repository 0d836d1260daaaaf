package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Avishake00/schl-scheduler-frontend/internal/cache"
	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
)

// fakeAuthRepo stands in for the backend's student login endpoint.
type fakeAuthRepo struct {
	student *models.Student
	err     error
}

func (f *fakeAuthRepo) AuthenticateStudent(context.Context, string, string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.student, nil
}

func newTestSession(auth repositories.AuthRepository) (*SessionService, *cache.MemoryStore) {
	store := cache.NewMemoryStore()
	session := NewSessionService(store, DefaultVerifiers(auth), discardLogger())
	return session, store
}

func TestLogin_TeacherAllowList(t *testing.T) {
	session, store := newTestSession(&fakeAuthRepo{})
	ctx := context.Background()

	user, err := session.Login(ctx, "teacher@gmail.com", "password", models.RoleTeacher)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != models.RoleTeacher {
		t.Errorf("Role = %q, want teacher", user.Role)
	}
	if session.State() != SessionAuthenticated {
		t.Errorf("State = %v, want authenticated", session.State())
	}

	snapshot, err := store.Get(ctx, sessionKey)
	if err != nil {
		t.Fatalf("mirror read: %v", err)
	}
	var mirrored models.User
	if err := json.Unmarshal([]byte(snapshot), &mirrored); err != nil {
		t.Fatalf("mirror decode: %v", err)
	}
	if mirrored.Role != models.RoleTeacher {
		t.Errorf("mirrored Role = %q, want teacher", mirrored.Role)
	}
}

func TestLogin_WrongTeacherSecret(t *testing.T) {
	session, store := newTestSession(&fakeAuthRepo{})
	ctx := context.Background()

	_, err := session.Login(ctx, "teacher@gmail.com", "letmein", models.RoleTeacher)
	if err == nil {
		t.Fatal("expected login failure")
	}
	if session.State() != SessionUnauthenticated {
		t.Errorf("State = %v, want unauthenticated", session.State())
	}
	if session.LastError() == "" {
		t.Error("LastError is empty, want recorded reason")
	}
	if session.Current() != nil {
		t.Error("Current() non-nil after failed login")
	}
	if _, err := store.Get(ctx, sessionKey); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("mirror present after failed login, err = %v", err)
	}
}

func TestLogin_StudentDelegatesToBackend(t *testing.T) {
	auth := &fakeAuthRepo{student: &models.Student{
		ID: "2", Name: "Jane Doe", Email: "student@example.com", StudentID: "CS20220002",
	}}
	session, _ := newTestSession(auth)

	user, err := session.Login(context.Background(), "student@example.com", "CS20220002", models.RoleStudent)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("Role = %q, want student", user.Role)
	}
	if user.ID != "2" || user.Name != "Jane Doe" {
		t.Errorf("user not mapped from student record: %+v", user)
	}
	if !strings.Contains(user.Avatar, "Jane+Doe") {
		t.Errorf("Avatar = %q, want derived placeholder", user.Avatar)
	}
}

func TestLogin_StudentRejection(t *testing.T) {
	auth := &fakeAuthRepo{err: &repositories.AuthError{Reason: "invalid email or student ID"}}
	session, _ := newTestSession(auth)

	_, err := session.Login(context.Background(), "student@example.com", "nope", models.RoleStudent)
	if err == nil {
		t.Fatal("expected login failure")
	}
	if got := session.LastError(); got != "invalid email or student ID" {
		t.Errorf("LastError = %q, want backend message", got)
	}
	if session.State() != SessionUnauthenticated {
		t.Errorf("State = %v, want unauthenticated", session.State())
	}
}

func TestLogin_UnknownRole(t *testing.T) {
	session, _ := newTestSession(&fakeAuthRepo{})

	_, err := session.Login(context.Background(), "x@example.com", "password", models.UserRole("admin"))
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("err = %v, want ErrUnknownRole", err)
	}
}

func TestLogout_ClearsSlotAndMirror(t *testing.T) {
	session, store := newTestSession(&fakeAuthRepo{})
	ctx := context.Background()

	if _, err := session.Login(ctx, "teacher@example.com", "password", models.RoleTeacher); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := session.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if session.State() != SessionUnauthenticated {
		t.Errorf("State = %v, want unauthenticated", session.State())
	}
	if session.Current() != nil {
		t.Error("Current() non-nil after logout")
	}
	if _, err := store.Get(ctx, sessionKey); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("mirror still present after logout, err = %v", err)
	}
}

func TestHydrate_RestoresPersistedSession(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	snapshot, _ := json.Marshal(models.User{ID: "1", Name: "John Smith", Role: models.RoleTeacher})
	if err := store.Set(ctx, sessionKey, string(snapshot)); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	session := NewSessionService(store, DefaultVerifiers(&fakeAuthRepo{}), discardLogger())
	if err := session.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	if session.State() != SessionAuthenticated {
		t.Errorf("State = %v, want authenticated", session.State())
	}
	if user := session.Current(); user == nil || user.ID != "1" {
		t.Errorf("Current = %+v, want hydrated user", user)
	}
}

func TestHydrate_EmptyMirror(t *testing.T) {
	session, _ := newTestSession(&fakeAuthRepo{})

	if err := session.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if session.State() != SessionUnauthenticated {
		t.Errorf("State = %v, want unauthenticated", session.State())
	}
}
