// Package records implements the domain repositories over the record
// store. Every mutation loads the full collection, computes the new
// collection, and saves it back, preserving all other records.
package records

import (
	"context"
	"strings"

	"internmatch/internal/common"
	"internmatch/internal/domain/user"
	"internmatch/internal/store"
)

type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) load(ctx context.Context) ([]user.User, error) {
	var items []user.User
	if err := r.store.Load(ctx, store.CollectionUsers, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id common.ID) (*user.User, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			found := items[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range items {
		if strings.ToLower(items[i].Email) == needle {
			found := items[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if u.ID.IsZero() {
		u.ID = common.NewID("user")
	}
	items = append(items, u)
	if err := r.store.Save(ctx, store.Change{Collection: store.CollectionUsers, Value: items}); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) (*user.User, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == u.ID {
			items[i] = u
			if err := r.store.Save(ctx, store.Change{Collection: store.CollectionUsers, Value: items}); err != nil {
				return nil, common.NewError(common.CodeInternal, "failed to update user", err)
			}
			return &u, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}
