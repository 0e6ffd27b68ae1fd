package user

import (
	"context"
	"strings"

	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
)

// UpdateProfile edits the caller's own account. The administrator's profile
// document is created on first save; its password lives in configuration.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, sess models.Session, req ProfileUpdate) (*models.PublicUser, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if fullName == "" || email == "" {
		return nil, utils.ValidationError("full name and email are required")
	}
	if !validEmail(email) {
		return nil, utils.ValidationError("invalid email address")
	}
	username := normalizeUsername(sess.ActiveUsername)

	if sess.IsAdmin {
		if req.Password != "" {
			return nil, utils.ValidationError("the administrator password is set in configuration")
		}
		return s.saveAdminProfile(ctx, username, fullName, email)
	}

	account, err := s.Repo.GetByUsername(ctx, username)
	if isNotFound(err) {
		return nil, utils.NotFoundError("account not found")
	}
	if err != nil {
		return nil, storeFailure("load account", err)
	}

	fields := store.Document{"fullName": fullName, "email": email}
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, utils.ValidationError("password could not be processed")
		}
		fields["password"] = hash
	}
	if err := s.Repo.Update(ctx, username, fields); err != nil {
		return nil, storeFailure("update profile", err)
	}
	utils.GetLogger().Info("UpdateProfile: profile updated", zap.String("username", username), zap.Bool("passwordChanged", req.Password != ""))

	account.FullName = fullName
	account.Email = email
	pub := account.Public()
	return &pub, nil
}

func (s *DefaultUserService) saveAdminProfile(ctx context.Context, username, fullName, email string) (*models.PublicUser, error) {
	profile, err := s.Repo.GetByUsername(ctx, username)
	if err != nil && !isNotFound(err) {
		return nil, storeFailure("load admin profile", err)
	}
	if profile == nil {
		now := s.Now()
		profile = &models.UserAccount{
			Username:     username,
			Verification: models.Verification{Verified: true, AdminApproved: true, VerifiedAt: &now},
		}
	}
	profile.FullName = fullName
	profile.Email = email
	if err := s.Repo.Save(ctx, profile); err != nil {
		return nil, storeFailure("save admin profile", err)
	}
	pub := profile.Public()
	return &pub, nil
}
