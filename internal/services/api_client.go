// internal/services/api_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/greyhoundwelfare/licence-frontend/internal/models"
)

// APIClient talks to the backend forms API over HTTP. Each call is awaited
// end-to-end; there is no retry policy, a failed call surfaces as an error
// for the controller to degrade gracefully.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewAPIClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Response envelopes used by the backend API.
type formEnvelope struct {
	Message string       `json:"message,omitempty"`
	Form    *models.Form `json:"form"`
}

type listEnvelope struct {
	Forms []models.Form `json:"forms"`
}

func (c *APIClient) ListForms(ctx context.Context) ([]models.Form, error) {
	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/forms", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Forms, nil
}

func (c *APIClient) GetForm(ctx context.Context, formID string) (*models.Form, error) {
	var envelope formEnvelope
	err := c.do(ctx, http.MethodGet, "/api/forms/"+formID, nil, &envelope)
	if err != nil {
		var apiErr *APIError
		// An unknown form is a soft miss, not a failure.
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return envelope.Form, nil
}

func (c *APIClient) CreateForm(ctx context.Context, req *CreateFormRequest) (*models.Form, error) {
	var envelope formEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/forms", req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Form == nil || envelope.Form.ID == "" {
		return nil, fmt.Errorf("create form: backend response missing form ID")
	}
	return envelope.Form, nil
}

func (c *APIClient) UpdateForm(ctx context.Context, formID string, form *models.Form) (*models.Form, error) {
	var envelope formEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/forms/"+formID, form, &envelope); err != nil {
		return nil, err
	}
	return envelope.Form, nil
}

func (c *APIClient) SubmitForm(ctx context.Context, formID string) (*models.Form, error) {
	var envelope formEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/forms/"+formID+"/submit", struct{}{}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Form, nil
}

func (c *APIClient) DeleteForm(ctx context.Context, formID string) error {
	return c.do(ctx, http.MethodDelete, "/api/forms/"+formID, nil, nil)
}

// ProcessForm handles the generic form-submit flow by creating an application
// from the posted fields.
func (c *APIClient) ProcessForm(ctx context.Context, fields map[string]string) (*models.Form, error) {
	name := fields["formName"]
	if name == "" {
		name = "General application"
	}
	return c.CreateForm(ctx, &CreateFormRequest{FormName: name})
}

func (c *APIClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
		}).WithError(err).Error("Backend API request failed")
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		}).Error("Backend API returned error status")
		return &APIError{StatusCode: resp.StatusCode, Operation: method + " " + endpoint}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
	}
	return nil
}
