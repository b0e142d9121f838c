package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/capitaoleads/leadstore-go/internal/model"
	"github.com/capitaoleads/leadstore-go/internal/repository"
)

// FormService is the per-user form registry.
type FormService struct {
	forms repository.FormRepository
	leads repository.LeadRepository
}

func NewFormService(forms repository.FormRepository, leads repository.LeadRepository) *FormService {
	return &FormService{
		forms: forms,
		leads: leads,
	}
}

// List returns the user's forms in insertion order. No provisioning happens
// here; an unmigrated user simply gets an empty slice.
func (s *FormService) List(ctx context.Context, userID string) ([]model.FormConfig, error) {
	return s.forms.ListByUser(ctx, userID)
}

func (s *FormService) Get(ctx context.Context, userID, formID string) (*model.FormConfig, error) {
	forms, err := s.forms.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].ID == formID {
			return &forms[i], nil
		}
	}
	return nil, nil
}

// Create appends a form built from the default template.
func (s *FormService) Create(ctx context.Context, userID, title string) (*model.FormConfig, error) {
	forms, err := s.forms.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	form := model.NewForm(title)
	forms = append(forms, form)

	if err := s.forms.ReplaceAll(ctx, userID, forms); err != nil {
		return nil, err
	}

	log.Info().Str("userId", userID).Str("formId", form.ID).Msg("form created")
	return &form, nil
}

// Update replaces the stored form whose id matches. A missing id is a
// tolerated no-op, reported as false so callers can tell.
func (s *FormService) Update(ctx context.Context, userID string, form model.FormConfig) (bool, error) {
	forms, err := s.forms.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	for i := range forms {
		if forms[i].ID == form.ID {
			forms[i] = form
			if err := s.forms.ReplaceAll(ctx, userID, forms); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the form and retags its leads as consolidated. The two
// writes are sequential: if the process dies between them the leads keep
// the dead form id until this operation's retag step, which only runs
// here, is repeated. The substrate offers no multi-key write to close
// that window. When the last form is removed a fresh default form takes
// its place so the collection never stays empty for an active user.
func (s *FormService) Delete(ctx context.Context, userID, formID string) (bool, error) {
	forms, err := s.forms.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	remaining := make([]model.FormConfig, 0, len(forms))
	for _, f := range forms {
		if f.ID != formID {
			remaining = append(remaining, f)
		}
	}
	if len(remaining) == len(forms) {
		return false, nil
	}

	if len(remaining) == 0 {
		remaining = append(remaining, model.NewForm(model.DefaultFormTitle))
	}

	if err := s.forms.ReplaceAll(ctx, userID, remaining); err != nil {
		return false, err
	}

	consolidated, err := s.consolidateLeads(ctx, userID, formID)
	if err != nil {
		return false, err
	}

	log.Info().
		Str("userId", userID).
		Str("formId", formID).
		Int("consolidatedLeads", consolidated).
		Msg("form deleted")

	return true, nil
}

func (s *FormService) consolidateLeads(ctx context.Context, userID, formID string) (int, error) {
	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range leads {
		if leads[i].FormID == formID {
			leads[i].FormID = model.ConsolidatedFormID
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	if err := s.leads.ReplaceAll(ctx, userID, leads); err != nil {
		return 0, err
	}
	return changed, nil
}
