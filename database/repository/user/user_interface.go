package userRepo

import (
	"context"

	"barbershop/database/store"
	"barbershop/models"
)

// UserRepository defines methods for account data access. Accounts are keyed
// by their lowercase username.
type UserRepository interface {
	// GetByUsername returns store.ErrNotFound when no account exists.
	GetByUsername(ctx context.Context, username string) (*models.UserAccount, error)
	// GetAll retrieves all accounts sorted by username.
	GetAll(ctx context.Context) ([]models.UserAccount, error)
	// Save creates or replaces the account document.
	Save(ctx context.Context, user *models.UserAccount) error
	// Update merges fields into the account. Dotted keys address nested fields.
	Update(ctx context.Context, username string, fields store.Document) error
	// Delete removes the account. Deleting a missing account is not an error.
	Delete(ctx context.Context, username string) error
}
