package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/capitaoleads/leadstore-go/internal/apperrors"
	"github.com/capitaoleads/leadstore-go/internal/model"
	"github.com/capitaoleads/leadstore-go/internal/repository"
)

// AuthService is the user directory: the global account list plus the
// single active-session pointer.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	forms    repository.FormRepository
	migrator *Migrator
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	forms repository.FormRepository,
	migrator *Migrator,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		forms:    forms,
		migrator: migrator,
	}
}

// Register creates an account and provisions its first form. Emails are
// unique, compared case-sensitively on the stored value; a duplicate yields
// a CONFLICT error and no result.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.SanitizedUser, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.EmailTaken()
	}

	user := model.NewUser(name, email, password)
	if err := s.users.Append(ctx, user); err != nil {
		return nil, err
	}

	form := model.NewForm(model.DefaultFormTitle)
	if err := s.forms.ReplaceAll(ctx, user.ID, []model.FormConfig{form}); err != nil {
		return nil, err
	}

	log.Info().Str("userId", user.ID).Msg("user registered")

	sanitized := user.Sanitize()
	return &sanitized, nil
}

// Login requires an exact match on both stored fields and does not reveal
// which one was wrong. On success it sets the session pointer and runs the
// settings-to-forms migration before returning.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.SanitizedUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, apperrors.InvalidCredentials()
	}

	if err := s.sessions.SetCurrentUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	if _, err := s.migrator.EnsureUserForms(ctx, user.ID); err != nil {
		return nil, err
	}

	log.Info().Str("userId", user.ID).Msg("user logged in")

	sanitized := user.Sanitize()
	return &sanitized, nil
}

// Logout clears the session pointer. Idempotent.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser resolves the session pointer. An absent or dangling pointer
// yields nil, not an error.
func (s *AuthService) CurrentUser(ctx context.Context) (*model.SanitizedUser, error) {
	id, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	sanitized := user.Sanitize()
	return &sanitized, nil
}

// SeedAdmin registers the administrator account if it is absent. Safe to
// call on every startup.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if _, err := s.Register(ctx, name, email, password); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("admin account seeded")
	return nil
}

// Users lists every registered account, credential-free, for the admin
// surface.
func (s *AuthService) Users(ctx context.Context) ([]model.SanitizedUser, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	sanitized := make([]model.SanitizedUser, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitize())
	}
	return sanitized, nil
}

// Lookup resolves a user by id or email, for callers that accept either.
func (s *AuthService) Lookup(ctx context.Context, ref string) (*model.SanitizedUser, error) {
	user, err := s.users.FindByEmail(ctx, ref)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if user, err = s.users.FindByID(ctx, ref); err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, nil
	}

	sanitized := user.Sanitize()
	return &sanitized, nil
}
