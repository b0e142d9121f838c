package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsolidatedFormID is the sentinel a lead is retagged with when the form
// that captured it is deleted. The lead outlives the form.
const ConsolidatedFormID = "consolidated"

// Lead is one form submission. FormID is a weak reference: it may name a
// form that no longer exists only during the window between a form deletion
// and its lead consolidation.
type Lead struct {
	ID         string    `json:"id"`
	FormID     string    `json:"formId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Whatsapp   string    `json:"whatsapp"`
	CapturedAt time.Time `json:"capturedAt"`
}

// LeadInput is the visitor-supplied portion of a lead.
type LeadInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
}

func NewLead(formID string, in LeadInput) Lead {
	return Lead{
		ID:         uuid.NewString(),
		FormID:     formID,
		Name:       in.Name,
		Email:      in.Email,
		Whatsapp:   in.Whatsapp,
		CapturedAt: time.Now(),
	}
}
