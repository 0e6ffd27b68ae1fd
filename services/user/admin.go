package user

import (
	"context"

	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
)

func requireAdmin(sess models.Session) error {
	if !sess.IsAdmin {
		return utils.AuthError("administrator access required")
	}
	return nil
}

// Approve grants content access. There is no revoke.
func (s *DefaultUserService) Approve(ctx context.Context, sess models.Session, username string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	username = normalizeUsername(username)
	if _, err := s.Repo.GetByUsername(ctx, username); err != nil {
		if isNotFound(err) {
			return utils.NotFoundError("account not found")
		}
		return storeFailure("load account", err)
	}
	if err := s.Repo.Update(ctx, username, store.Document{"verification.adminApproved": true}); err != nil {
		return storeFailure("approve account", err)
	}
	utils.GetLogger().Info("Approve: account approved", zap.String("username", username))
	return nil
}

func (s *DefaultUserService) ListAccounts(ctx context.Context, sess models.Session) ([]models.PublicUser, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	accounts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, storeFailure("list accounts", err)
	}
	out := make([]models.PublicUser, 0, len(accounts))
	for _, a := range accounts {
		if s.isAdmin(a.Username) {
			continue
		}
		out = append(out, a.Public())
	}
	return out, nil
}

func (s *DefaultUserService) DeleteAccount(ctx context.Context, sess models.Session, username string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	username = normalizeUsername(username)
	if s.isAdmin(username) {
		return utils.ValidationError("the administrator account cannot be deleted")
	}
	if err := s.Repo.Delete(ctx, username); err != nil {
		return storeFailure("delete account", err)
	}
	utils.GetLogger().Info("DeleteAccount: account removed", zap.String("username", username))
	return nil
}
