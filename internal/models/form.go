// internal/models/form.go
package models

import (
	"time"
)

type FormStatus string

const (
	FormStatusInProgress FormStatus = "in-progress"
	FormStatusSubmitted  FormStatus = "submitted"
)

// Form is the application document of record. The backend API owns it; this
// service only reads it, merges page payloads into it and writes it back.
type Form struct {
	ID              string         `json:"id"`
	FormName        string         `json:"formName"`
	Status          FormStatus     `json:"status"`
	ReferenceNumber string         `json:"referenceNumber,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Pages           map[string]any `json:"pages"`
}

func (f *Form) IsSubmitted() bool {
	return f.Status == FormStatusSubmitted
}

// EmptyPages returns the section skeleton a new application starts with.
// Every wizard page targets one of these sections.
func EmptyPages() map[string]any {
	return map[string]any{
		"applicantDetails": map[string]any{},
		"licensingConditions": map[string]any{
			"condition1": map[string]any{},
			"condition2": map[string]any{},
			"condition3": map[string]any{},
			"condition4": map[string]any{},
			"condition5": map[string]any{},
			"condition6": map[string]any{},
		},
	}
}

// Clone returns a deep copy of the form so callers can merge page data
// without mutating the stored document.
func (f *Form) Clone() *Form {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Pages = clonePages(f.Pages)
	return &clone
}

func clonePages(pages map[string]any) map[string]any {
	if pages == nil {
		return nil
	}
	out := make(map[string]any, len(pages))
	for k, v := range pages {
		if nested, ok := v.(map[string]any); ok {
			out[k] = clonePages(nested)
			continue
		}
		out[k] = v
	}
	return out
}
