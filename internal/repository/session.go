package repository

import (
	"context"

	"github.com/capitaoleads/leadstore-go/internal/kv"
)

// SessionRepository holds the single process-wide pointer to the currently
// authenticated user. The stored value is the bare user id, not JSON.
type SessionRepository interface {
	// CurrentUserID returns "" when no session is active.
	CurrentUserID(ctx context.Context) (string, error)
	SetCurrentUserID(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}

type sessionRepo struct {
	store kv.Store
}

func NewSessionRepository(store kv.Store) SessionRepository {
	return &sessionRepo{store: store}
}

func (r *sessionRepo) CurrentUserID(ctx context.Context) (string, error) {
	id, _, err := r.store.Get(ctx, kv.SessionKey)
	return id, err
}

func (r *sessionRepo) SetCurrentUserID(ctx context.Context, userID string) error {
	return r.store.Set(ctx, kv.SessionKey, userID)
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, kv.SessionKey)
}
