package service

import (
	"testing"

	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/repository"
)

// testEnv wires the full service stack over an in-memory substrate, the
// same way main wires it over a real one.
type testEnv struct {
	store    *kv.Memory
	forms    repository.FormRepository
	leads    repository.LeadRepository
	sessions repository.SessionRepository
	migrator *Migrator
	auth     *AuthService
	formSvc  *FormService
	leadSvc  *LeadService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := kv.NewMemory()
	users := repository.NewUserRepository(store)
	sessions := repository.NewSessionRepository(store)
	forms := repository.NewFormRepository(store)
	leads := repository.NewLeadRepository(store)
	settings := repository.NewSettingsRepository(store)

	migrator := NewMigrator(forms, leads, settings)

	return &testEnv{
		store:    store,
		forms:    forms,
		leads:    leads,
		sessions: sessions,
		migrator: migrator,
		auth:     NewAuthService(users, sessions, forms, migrator),
		formSvc:  NewFormService(forms, leads),
		leadSvc:  NewLeadService(leads, migrator),
	}
}
