package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/capitaoleads/leadstore-go/internal/model"
	"github.com/capitaoleads/leadstore-go/internal/repository"
)

// LeadService is the per-user lead ledger. New leads are prepended, so the
// stored order is newest first.
type LeadService struct {
	leads    repository.LeadRepository
	migrator *Migrator
}

func NewLeadService(leads repository.LeadRepository, migrator *Migrator) *LeadService {
	return &LeadService{
		leads:    leads,
		migrator: migrator,
	}
}

// List runs the lead-tag backfill before reading, so callers never observe
// an untagged lead once the user has at least one form.
func (s *LeadService) List(ctx context.Context, userID string) ([]model.Lead, error) {
	if _, err := s.migrator.BackfillLeadTags(ctx, userID); err != nil {
		return nil, err
	}
	return s.leads.ListByUser(ctx, userID)
}

// Save records a submission. Repeated submissions are valid business data;
// no duplicate detection happens here.
func (s *LeadService) Save(ctx context.Context, userID, formID string, in model.LeadInput) (*model.Lead, error) {
	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lead := model.NewLead(formID, in)
	leads = append([]model.Lead{lead}, leads...)

	if err := s.leads.ReplaceAll(ctx, userID, leads); err != nil {
		return nil, err
	}

	log.Info().Str("userId", userID).Str("formId", formID).Msg("lead captured")
	return &lead, nil
}

// Update replaces the stored lead whose id matches; false when absent.
func (s *LeadService) Update(ctx context.Context, userID string, lead model.Lead) (bool, error) {
	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	for i := range leads {
		if leads[i].ID == lead.ID {
			leads[i] = lead
			if err := s.leads.ReplaceAll(ctx, userID, leads); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *LeadService) Delete(ctx context.Context, userID, leadID string) (bool, error) {
	removed, err := s.DeleteMany(ctx, userID, []string{leadID})
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

// DeleteMany removes the listed ids with set-difference semantics: absent
// ids are ignored, and the count of actually removed leads is returned.
func (s *LeadService) DeleteMany(ctx context.Context, userID string, leadIDs []string) (int, error) {
	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	drop := make(map[string]struct{}, len(leadIDs))
	for _, id := range leadIDs {
		drop[id] = struct{}{}
	}

	remaining := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if _, gone := drop[l.ID]; !gone {
			remaining = append(remaining, l)
		}
	}

	removed := len(leads) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	if err := s.leads.ReplaceAll(ctx, userID, remaining); err != nil {
		return 0, err
	}

	log.Info().Str("userId", userID).Int("count", removed).Msg("leads deleted")
	return removed, nil
}
