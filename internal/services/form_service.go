// internal/services/form_service.go
package services

import (
	"context"
	"fmt"

	"github.com/greyhoundwelfare/licence-frontend/internal/models"
)

// CreateFormRequest starts a new application.
type CreateFormRequest struct {
	FormName string `json:"formName" validate:"required"`
}

// FormService is the collaborator the wizard persists through. Production
// uses the HTTP client against the backend API; tests and local development
// inject the in-memory store.
type FormService interface {
	ListForms(ctx context.Context) ([]models.Form, error)
	GetForm(ctx context.Context, formID string) (*models.Form, error)
	CreateForm(ctx context.Context, req *CreateFormRequest) (*models.Form, error)
	UpdateForm(ctx context.Context, formID string, form *models.Form) (*models.Form, error)
	SubmitForm(ctx context.Context, formID string) (*models.Form, error)
	DeleteForm(ctx context.Context, formID string) error
	ProcessForm(ctx context.Context, fields map[string]string) (*models.Form, error)
}

// APIError carries the backend's HTTP status so controllers can forward it
// where the flow demands (new-form creation failures).
type APIError struct {
	StatusCode int
	Operation  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d", e.Operation, e.StatusCode)
}
