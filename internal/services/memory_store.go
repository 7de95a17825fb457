// internal/services/memory_store.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greyhoundwelfare/licence-frontend/internal/models"
)

var (
	ErrFormNotFound  = errors.New("form not found")
	ErrFormSubmitted = errors.New("form already submitted")
)

// MemoryStore is an injectable FormService backed by a map, used for local
// development and tests instead of the backend API.
type MemoryStore struct {
	mtx   sync.Mutex
	forms map[string]*models.Form
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		forms: make(map[string]*models.Form),
	}
}

func (s *MemoryStore) ListForms(_ context.Context) ([]models.Form, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	forms := make([]models.Form, 0, len(s.forms))
	for _, form := range s.forms {
		forms = append(forms, *form.Clone())
	}
	return forms, nil
}

func (s *MemoryStore) GetForm(_ context.Context, formID string) (*models.Form, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	form, ok := s.forms[formID]
	if !ok {
		return nil, nil
	}
	return form.Clone(), nil
}

func (s *MemoryStore) CreateForm(_ context.Context, req *CreateFormRequest) (*models.Form, error) {
	if req == nil || req.FormName == "" {
		return nil, errors.New("form name is required")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := time.Now().UTC()
	form := &models.Form{
		ID:        uuid.NewString(),
		FormName:  req.FormName,
		Status:    models.FormStatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
		Pages:     models.EmptyPages(),
	}
	s.forms[form.ID] = form
	return form.Clone(), nil
}

func (s *MemoryStore) UpdateForm(_ context.Context, formID string, update *models.Form) (*models.Form, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	form, ok := s.forms[formID]
	if !ok {
		return nil, ErrFormNotFound
	}
	if form.IsSubmitted() {
		return nil, ErrFormSubmitted
	}

	if update.FormName != "" {
		form.FormName = update.FormName
	}
	if update.Pages != nil {
		form.Pages = update.Clone().Pages
	}
	form.UpdatedAt = time.Now().UTC()
	return form.Clone(), nil
}

func (s *MemoryStore) SubmitForm(_ context.Context, formID string) (*models.Form, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	form, ok := s.forms[formID]
	if !ok {
		return nil, ErrFormNotFound
	}

	// Submission happens exactly once; a repeated submit returns the stored
	// document unchanged.
	if !form.IsSubmitted() {
		form.Status = models.FormStatusSubmitted
		form.UpdatedAt = time.Now().UTC()
		if form.ReferenceNumber == "" {
			form.ReferenceNumber = fmt.Sprintf("HDJ%04dF", rand.Intn(10000))
		}
	}
	return form.Clone(), nil
}

func (s *MemoryStore) DeleteForm(_ context.Context, formID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	form, ok := s.forms[formID]
	if !ok {
		return ErrFormNotFound
	}
	if form.IsSubmitted() {
		return ErrFormSubmitted
	}
	delete(s.forms, formID)
	return nil
}

func (s *MemoryStore) ProcessForm(ctx context.Context, fields map[string]string) (*models.Form, error) {
	name := fields["formName"]
	if name == "" {
		name = "General application"
	}
	return s.CreateForm(ctx, &CreateFormRequest{FormName: name})
}
