package repository

import (
	"context"

	"github.com/capitaoleads/leadstore-go/internal/codec"
	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/model"
)

type UserRepository interface {
	All(ctx context.Context) ([]model.User, error)
	// FindByEmail compares case-sensitively on the stored value.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Append(ctx context.Context, user model.User) error
}

type userRepo struct {
	store kv.Store
}

func NewUserRepository(store kv.Store) UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) All(ctx context.Context) ([]model.User, error) {
	raw, ok, err := r.store.Get(ctx, kv.UsersKey)
	if err != nil {
		return nil, err
	}
	return codec.SliceOr[model.User](raw, ok, kv.UsersKey), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) Append(ctx context.Context, user model.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)

	raw, err := codec.Encode(users)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.UsersKey, raw)
}
