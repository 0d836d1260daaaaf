package rest

import (
	"github.com/Avishake00/schl-scheduler-frontend/internal/events"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// repositoryManager wires the REST repositories over one shared client.
type repositoryManager struct {
	classes  *ClassREST
	students *StudentREST
	auth     *AuthREST
}

// NewRepository builds the remote data access layer. bus may be nil when no
// one consumes mutation notifications.
func NewRepository(client *Client, v *validator.Validator, bus *events.Bus) repositories.Repository {
	return &repositoryManager{
		classes:  NewClassREST(client, v, bus),
		students: NewStudentREST(client, v, bus),
		auth:     NewAuthREST(client),
	}
}

func (m *repositoryManager) Class() repositories.ClassRepository {
	return m.classes
}

func (m *repositoryManager) Student() repositories.StudentRepository {
	return m.students
}

func (m *repositoryManager) Auth() repositories.AuthRepository {
	return m.auth
}
