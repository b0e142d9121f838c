package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/capitaoleads/leadstore-go/internal/model"
	"github.com/capitaoleads/leadstore-go/internal/repository"
)

// Outcome reports whether a lazy migration actually rewrote stored state.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeApplied
)

func (o Outcome) String() string {
	if o == OutcomeApplied {
		return "applied"
	}
	return "none"
}

// Migrator upgrades legacy data shapes lazily, on the read paths that would
// otherwise observe them. Both migrations are idempotent.
type Migrator struct {
	forms    repository.FormRepository
	leads    repository.LeadRepository
	settings repository.SettingsRepository
}

func NewMigrator(
	forms repository.FormRepository,
	leads repository.LeadRepository,
	settings repository.SettingsRepository,
) *Migrator {
	return &Migrator{
		forms:    forms,
		leads:    leads,
		settings: settings,
	}
}

// EnsureUserForms provisions the form collection for users whose data
// predates multi-form support. It keys on the collection key being absent,
// not on its contents, so it runs at most once per user regardless of what
// the collection later holds. The first form carries over the legacy
// settings record when one exists.
func (m *Migrator) EnsureUserForms(ctx context.Context, userID string) (Outcome, error) {
	exists, err := m.forms.Exists(ctx, userID)
	if err != nil {
		return OutcomeNone, err
	}
	if exists {
		return OutcomeNone, nil
	}

	settings, err := m.settings.Find(ctx, userID)
	if err != nil {
		return OutcomeNone, err
	}

	var form model.FormConfig
	if settings != nil {
		form = model.FormFromSettings(model.DefaultFormTitle, *settings)
	} else {
		form = model.NewForm(model.DefaultFormTitle)
	}

	if err := m.forms.ReplaceAll(ctx, userID, []model.FormConfig{form}); err != nil {
		return OutcomeNone, err
	}

	log.Info().
		Str("userId", userID).
		Str("formId", form.ID).
		Bool("fromLegacySettings", settings != nil).
		Msg("provisioned form collection for legacy user")

	return OutcomeApplied, nil
}

// BackfillLeadTags assigns the user's first form id to every stored lead
// that lacks a form tag. It runs on every ledger read rather than once,
// so it self-heals if untagged data reappears. Leads stay untouched when
// the user has no forms to tag them with.
func (m *Migrator) BackfillLeadTags(ctx context.Context, userID string) (Outcome, error) {
	leads, err := m.leads.ListByUser(ctx, userID)
	if err != nil {
		return OutcomeNone, err
	}

	untagged := 0
	for i := range leads {
		if leads[i].FormID == "" {
			untagged++
		}
	}
	if untagged == 0 {
		return OutcomeNone, nil
	}

	forms, err := m.forms.ListByUser(ctx, userID)
	if err != nil {
		return OutcomeNone, err
	}
	if len(forms) == 0 {
		return OutcomeNone, nil
	}

	firstFormID := forms[0].ID
	for i := range leads {
		if leads[i].FormID == "" {
			leads[i].FormID = firstFormID
		}
	}

	if err := m.leads.ReplaceAll(ctx, userID, leads); err != nil {
		return OutcomeNone, err
	}

	log.Info().
		Str("userId", userID).
		Str("formId", firstFormID).
		Int("count", untagged).
		Msg("tagged legacy leads with first form")

	return OutcomeApplied, nil
}
