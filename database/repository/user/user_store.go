package userRepo

import (
	"context"
	"fmt"
	"sort"

	"barbershop/database/store"
	"barbershop/models"
)

// StoreUserRepo implements UserRepository on top of the collection store.
type StoreUserRepo struct {
	store store.Store
}

// NewStoreUserRepo creates a UserRepository backed by the users collection.
func NewStoreUserRepo(s store.Store) UserRepository {
	return &StoreUserRepo{store: s}
}

func (r *StoreUserRepo) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	doc, err := r.store.Get(ctx, store.Users, username)
	if err != nil {
		return nil, err
	}
	var user models.UserAccount
	if err := store.Decode(doc, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", username, err)
	}
	user.Username = username
	return &user, nil
}

func (r *StoreUserRepo) GetAll(ctx context.Context) ([]models.UserAccount, error) {
	records, err := r.store.List(ctx, store.Users)
	if err != nil {
		return nil, err
	}
	users := make([]models.UserAccount, 0, len(records))
	for _, rec := range records {
		var user models.UserAccount
		if err := store.Decode(rec.Data, &user); err != nil {
			return nil, fmt.Errorf("failed to decode user %s: %w", rec.ID, err)
		}
		user.Username = rec.ID
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (r *StoreUserRepo) Save(ctx context.Context, user *models.UserAccount) error {
	doc, err := store.Encode(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.Users, user.Username, doc)
}

func (r *StoreUserRepo) Update(ctx context.Context, username string, fields store.Document) error {
	return r.store.Update(ctx, store.Users, username, fields)
}

func (r *StoreUserRepo) Delete(ctx context.Context, username string) error {
	return r.store.Remove(ctx, store.Users, username)
}
