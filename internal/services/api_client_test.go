package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhoundwelfare/licence-frontend/internal/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAPIClient(server.URL, 5*time.Second, newTestLogger())
}

func TestAPIClientListForms(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/forms", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"forms": []map[string]any{{"id": "1", "formName": "Track A"}},
		})
	})

	forms, err := client.ListForms(context.Background())
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Track A", forms[0].FormName)
}

func TestAPIClientGetForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/forms/abc", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"form": map[string]any{"id": "abc", "formName": "Track A", "status": "in-progress"},
		})
	})

	form, err := client.GetForm(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "abc", form.ID)
	assert.Equal(t, models.FormStatusInProgress, form.Status)
}

func TestAPIClientGetFormNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	form, err := client.GetForm(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, form)
}

func TestAPIClientCreateForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/forms", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Track A", body["formName"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "created",
			"form":    map[string]any{"id": "new-id", "formName": "Track A"},
		})
	})

	form, err := client.CreateForm(context.Background(), &CreateFormRequest{FormName: "Track A"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", form.ID)
}

func TestAPIClientCreateFormMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"form": map[string]any{}})
	})

	_, err := client.CreateForm(context.Background(), &CreateFormRequest{FormName: "Track A"})
	assert.Error(t, err)
}

func TestAPIClientUpdateForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/forms/abc", r.URL.Path)

		var body models.Form
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Track B", body.FormName)

		json.NewEncoder(w).Encode(map[string]any{
			"form": map[string]any{"id": "abc", "formName": "Track B"},
		})
	})

	form, err := client.UpdateForm(context.Background(), "abc", &models.Form{ID: "abc", FormName: "Track B"})
	require.NoError(t, err)
	assert.Equal(t, "Track B", form.FormName)
}

func TestAPIClientSubmitForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/forms/abc/submit", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"form": map[string]any{"id": "abc", "status": "submitted", "referenceNumber": "HDJ0042F"},
		})
	})

	form, err := client.SubmitForm(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusSubmitted, form.Status)
	assert.Equal(t, "HDJ0042F", form.ReferenceNumber)
}

func TestAPIClientDeleteForm(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteForm(context.Background(), "abc"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/forms/abc", gotPath)
}

func TestAPIClientBackendErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListForms(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
