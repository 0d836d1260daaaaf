package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
)

// CredentialVerifier checks one email/secret pair and resolves it to a user.
// Implementations are the whole credential policy; a real identity provider
// replaces one of these without touching the session store.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, secret string) (*models.User, error)
}

// ===== TEACHER ALLOW-LIST =====

// sharedTeacherSecret is the demo-stage shared password. The entire
// allow-list verifier is a stand-in for a real authentication subsystem.
const sharedTeacherSecret = "password"

// AllowListVerifier resolves teacher logins against a fixed identity list
// and a single shared secret.
type AllowListVerifier struct {
	teachers []models.User
	secret   string
}

// NewTeacherAllowListVerifier returns the demo allow-list of teacher
// identities.
func NewTeacherAllowListVerifier() *AllowListVerifier {
	return &AllowListVerifier{
		teachers: []models.User{
			{
				ID:     "1",
				Name:   "John Smith",
				Email:  "teacher@example.com",
				Role:   models.RoleTeacher,
				Avatar: AvatarURL("John Smith"),
			},
			{
				ID:     "10",
				Name:   "Ann Lee",
				Email:  "teacher@gmail.com",
				Role:   models.RoleTeacher,
				Avatar: AvatarURL("Ann Lee"),
			},
		},
		secret: sharedTeacherSecret,
	}
}

func (v *AllowListVerifier) Verify(_ context.Context, email, secret string) (*models.User, error) {
	for _, teacher := range v.teachers {
		if strings.EqualFold(teacher.Email, email) && secret == v.secret {
			user := teacher
			return &user, nil
		}
	}
	return nil, &repositories.AuthError{Reason: "invalid credentials"}
}

// ===== STUDENT BACKEND DELEGATE =====

// StudentVerifier delegates the credential check to the backend's student
// login endpoint and maps the returned record onto the user shape.
type StudentVerifier struct {
	auth repositories.AuthRepository
}

func NewStudentVerifier(auth repositories.AuthRepository) *StudentVerifier {
	return &StudentVerifier{auth: auth}
}

func (v *StudentVerifier) Verify(ctx context.Context, email, secret string) (*models.User, error) {
	student, err := v.auth.AuthenticateStudent(ctx, email, secret)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:     student.ID,
		Name:   student.Name,
		Email:  student.Email,
		Role:   models.RoleStudent,
		Avatar: AvatarURL(student.Name),
	}, nil
}

// AvatarURL derives the placeholder avatar for a display name. The
// derivation is deterministic so equal names always render the same avatar.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=60a5fa&color=fff", url.QueryEscape(name))
}

// DefaultVerifiers wires the demo credential policy: allow-list teachers,
// backend-delegated students.
func DefaultVerifiers(auth repositories.AuthRepository) map[models.UserRole]CredentialVerifier {
	return map[models.UserRole]CredentialVerifier{
		models.RoleTeacher: NewTeacherAllowListVerifier(),
		models.RoleStudent: NewStudentVerifier(auth),
	}
}
