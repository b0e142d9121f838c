package repository

import (
	"context"

	"github.com/capitaoleads/leadstore-go/internal/codec"
	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/model"
)

// SettingsRepository reads the legacy single-settings record. Nothing
// writes it anymore; a corrupted record is treated the same as an absent
// one so the migration falls back to the default template.
type SettingsRepository interface {
	Find(ctx context.Context, userID string) (*model.AppSettings, error)
}

type settingsRepo struct {
	store kv.Store
}

func NewSettingsRepository(store kv.Store) SettingsRepository {
	return &settingsRepo{store: store}
}

func (r *settingsRepo) Find(ctx context.Context, userID string) (*model.AppSettings, error) {
	key := kv.UserSettingsKey(userID)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	settings, ok := codec.Decode[model.AppSettings](raw, key)
	if !ok {
		return nil, nil
	}
	return &settings, nil
}
