package repositories

import (
	"context"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// ===== REQUEST DTOs =====

// Use business validator types
type CreateClassRequest = validator.ClassCreateRequest
type CreateStudentRequest = validator.StudentCreateRequest
type UpdateStudentRequest = validator.StudentUpdateRequest

// ===== REPOSITORY INTERFACES =====

// ClassRepository is the remote data access contract for scheduled classes.
// Every call is an independent request/response pair; there are no ordering
// guarantees between concurrently in-flight calls, and callers are expected
// to re-fetch after a mutation completes.
type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)

	// GetByID returns ErrClassNotFound when no class has the given id.
	GetByID(ctx context.Context, id string) (*models.Class, error)

	// ListByDate filters server-side by exact calendar date ("2006-01-02").
	ListByDate(ctx context.Context, date string) ([]models.Class, error)

	// ListForStudent filters server-side by roster membership.
	ListForStudent(ctx context.Context, studentID string) ([]models.Class, error)
	ListForStudentOnDate(ctx context.Context, studentID, date string) ([]models.Class, error)

	// Create posts a class without an id; the backend assigns one.
	Create(ctx context.Context, req *CreateClassRequest) (*models.Class, error)

	// Delete reports failure only through the error channel; a missing id is
	// ErrClassNotFound.
	Delete(ctx context.Context, id string) error
}

type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req *CreateStudentRequest) (*models.Student, error)

	// Update is a full-resource replace keyed by id.
	Update(ctx context.Context, id string, req *UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

// AuthRepository authenticates a student against the backend. The identifier
// is the student's external student number. Bad credentials surface as an
// *AuthError carrying the backend-supplied message.
type AuthRepository interface {
	AuthenticateStudent(ctx context.Context, email, identifier string) (*models.Student, error)
}

// Repository aggregates the remote data access layer.
type Repository interface {
	Class() ClassRepository
	Student() StudentRepository
	Auth() AuthRepository
}
