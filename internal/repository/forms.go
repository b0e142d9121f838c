package repository

import (
	"context"

	"github.com/capitaoleads/leadstore-go/internal/codec"
	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/model"
)

type FormRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.FormConfig, error)
	// Exists reports whether the user's form collection key is present at
	// all, which is how the migration engine tells "never migrated" apart
	// from "migrated, currently empty".
	Exists(ctx context.Context, userID string) (bool, error)
	ReplaceAll(ctx context.Context, userID string, forms []model.FormConfig) error
}

type formRepo struct {
	store kv.Store
}

func NewFormRepository(store kv.Store) FormRepository {
	return &formRepo{store: store}
}

func (r *formRepo) ListByUser(ctx context.Context, userID string) ([]model.FormConfig, error) {
	key := kv.UserFormsKey(userID)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return codec.SliceOr[model.FormConfig](raw, ok, key), nil
}

func (r *formRepo) Exists(ctx context.Context, userID string) (bool, error) {
	_, ok, err := r.store.Get(ctx, kv.UserFormsKey(userID))
	return ok, err
}

func (r *formRepo) ReplaceAll(ctx context.Context, userID string, forms []model.FormConfig) error {
	raw, err := codec.Encode(forms)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.UserFormsKey(userID), raw)
}
