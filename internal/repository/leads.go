package repository

import (
	"context"

	"github.com/capitaoleads/leadstore-go/internal/codec"
	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/model"
)

type LeadRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Lead, error)
	ReplaceAll(ctx context.Context, userID string, leads []model.Lead) error
}

type leadRepo struct {
	store kv.Store
}

func NewLeadRepository(store kv.Store) LeadRepository {
	return &leadRepo{store: store}
}

func (r *leadRepo) ListByUser(ctx context.Context, userID string) ([]model.Lead, error) {
	key := kv.UserLeadsKey(userID)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return codec.SliceOr[model.Lead](raw, ok, key), nil
}

func (r *leadRepo) ReplaceAll(ctx context.Context, userID string, leads []model.Lead) error {
	raw, err := codec.Encode(leads)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.UserLeadsKey(userID), raw)
}
