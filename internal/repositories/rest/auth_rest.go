package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
)

// AuthREST implements repositories.AuthRepository against the backend's
// student login endpoint.
type AuthREST struct {
	client *Client
}

func NewAuthREST(client *Client) *AuthREST {
	return &AuthREST{client: client}
}

type studentLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type studentLoginResponse struct {
	Student models.Student `json:"student"`
}

// AuthenticateStudent posts the student's email and external student number.
// A rejected login comes back as *repositories.AuthError carrying the
// backend's message; transport failures are returned as-is.
func (r *AuthREST) AuthenticateStudent(ctx context.Context, email, identifier string) (*models.Student, error) {
	req := studentLoginRequest{Email: email, Password: identifier}

	var resp studentLoginResponse
	err := r.client.doJSON(ctx, http.MethodPost, "/api/students/login", req, &resp)
	if err != nil {
		var backendErr *repositories.BackendError
		if errors.As(err, &backendErr) {
			reason := backendErr.Message
			if reason == "" {
				reason = "invalid credentials"
			}
			return nil, &repositories.AuthError{Reason: reason}
		}
		return nil, fmt.Errorf("student login failed: %w", err)
	}

	return &resp.Student, nil
}
