package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Avishake00/schl-scheduler-frontend/internal/events"
	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// ClassREST implements repositories.ClassRepository against the scheduling
// backend.
type ClassREST struct {
	client    *Client
	validator *validator.Validator
	bus       *events.Bus
}

func NewClassREST(client *Client, v *validator.Validator, bus *events.Bus) *ClassREST {
	return &ClassREST{
		client:    client,
		validator: v,
		bus:       bus,
	}
}

func (r *ClassREST) List(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := r.client.doJSON(ctx, http.MethodGet, "/api/classes", nil, &classes); err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (r *ClassREST) GetByID(ctx context.Context, id string) (*models.Class, error) {
	var class models.Class
	err := r.client.doJSON(ctx, http.MethodGet, "/api/classes/"+url.PathEscape(id), nil, &class)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, repositories.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class %s: %w", id, err)
	}
	return &class, nil
}

func (r *ClassREST) ListByDate(ctx context.Context, date string) ([]models.Class, error) {
	var classes []models.Class
	path := "/api/classes/date/" + url.PathEscape(date)
	if err := r.client.doJSON(ctx, http.MethodGet, path, nil, &classes); err != nil {
		return nil, fmt.Errorf("failed to list classes for date %s: %w", date, err)
	}
	return classes, nil
}

func (r *ClassREST) ListForStudent(ctx context.Context, studentID string) ([]models.Class, error) {
	var classes []models.Class
	path := "/api/classes/student/" + url.PathEscape(studentID)
	if err := r.client.doJSON(ctx, http.MethodGet, path, nil, &classes); err != nil {
		return nil, fmt.Errorf("failed to list classes for student %s: %w", studentID, err)
	}
	return classes, nil
}

func (r *ClassREST) ListForStudentOnDate(ctx context.Context, studentID, date string) ([]models.Class, error) {
	var classes []models.Class
	path := "/api/classes/student/" + url.PathEscape(studentID) + "/date/" + url.PathEscape(date)
	if err := r.client.doJSON(ctx, http.MethodGet, path, nil, &classes); err != nil {
		return nil, fmt.Errorf("failed to list classes for student %s on %s: %w", studentID, date, err)
	}
	return classes, nil
}

func (r *ClassREST) Create(ctx context.Context, req *repositories.CreateClassRequest) (*models.Class, error) {
	if errs := r.validator.Validate(req); errs != nil {
		return nil, errs
	}

	var created models.Class
	if err := r.client.doJSON(ctx, http.MethodPost, "/api/classes", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	r.bus.PublishMutation("class", events.ActionCreated, created.ID)
	return &created, nil
}

func (r *ClassREST) Delete(ctx context.Context, id string) error {
	err := r.client.doJSON(ctx, http.MethodDelete, "/api/classes/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return repositories.ErrClassNotFound
		}
		return fmt.Errorf("failed to delete class %s: %w", id, err)
	}

	r.bus.PublishMutation("class", events.ActionDeleted, id)
	return nil
}

// isStatus reports whether err is a backend rejection with the given status.
func isStatus(err error, status int) bool {
	var backendErr *repositories.BackendError
	return errors.As(err, &backendErr) && backendErr.StatusCode == status
}
