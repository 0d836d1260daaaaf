package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Avishake00/schl-scheduler-frontend/internal/events"
	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// StudentREST implements repositories.StudentRepository against the
// scheduling backend.
type StudentREST struct {
	client    *Client
	validator *validator.Validator
	bus       *events.Bus
}

func NewStudentREST(client *Client, v *validator.Validator, bus *events.Bus) *StudentREST {
	return &StudentREST{
		client:    client,
		validator: v,
		bus:       bus,
	}
}

func (r *StudentREST) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.client.doJSON(ctx, http.MethodGet, "/api/students", nil, &students); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (r *StudentREST) Create(ctx context.Context, req *repositories.CreateStudentRequest) (*models.Student, error) {
	if errs := r.validator.Validate(req); errs != nil {
		return nil, errs
	}

	var created models.Student
	if err := r.client.doJSON(ctx, http.MethodPost, "/api/students", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	r.bus.PublishMutation("student", events.ActionCreated, created.ID)
	return &created, nil
}

func (r *StudentREST) Update(ctx context.Context, id string, req *repositories.UpdateStudentRequest) (*models.Student, error) {
	if errs := r.validator.Validate(req); errs != nil {
		return nil, errs
	}

	var updated models.Student
	err := r.client.doJSON(ctx, http.MethodPut, "/api/students/"+url.PathEscape(id), req, &updated)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, repositories.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to update student %s: %w", id, err)
	}

	r.bus.PublishMutation("student", events.ActionUpdated, id)
	return &updated, nil
}

func (r *StudentREST) Delete(ctx context.Context, id string) error {
	err := r.client.doJSON(ctx, http.MethodDelete, "/api/students/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return repositories.ErrStudentNotFound
		}
		return fmt.Errorf("failed to delete student %s: %w", id, err)
	}

	r.bus.PublishMutation("student", events.ActionDeleted, id)
	return nil
}
