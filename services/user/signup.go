package user

import (
	"context"
	"strings"
	"time"

	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
)

// Signup creates an unverified account and dispatches its verification code.
func (s *DefaultUserService) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	logger := utils.GetLogger()
	username := normalizeUsername(req.Username)
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)

	if username == "" || fullName == "" || email == "" || req.Password == "" {
		return nil, utils.ValidationError("username, full name, email and password are required")
	}
	if !validEmail(email) {
		return nil, utils.ValidationError("invalid email address")
	}
	if s.isAdmin(username) {
		return nil, utils.AuthError("this username is reserved")
	}

	_, err := s.Repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, utils.AuthError("username %q is already taken", username)
	}
	if !isNotFound(err) {
		logger.Error("Signup: failed to check for existing user", zap.String("username", username), zap.Error(err))
		return nil, storeFailure("check username", err)
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		logger.Error("Signup: failed to hash password", zap.Error(err))
		return nil, utils.ValidationError("password could not be processed")
	}
	code, err := utils.GenerateNumericOTP()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	account := &models.UserAccount{
		Username:     username,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Verification: models.Verification{
			Code:      code,
			SentAt:    now,
			ExpiresAt: now.Add(s.verificationTTL()),
		},
	}
	if err := s.Repo.Save(ctx, account); err != nil {
		logger.Error("Signup: failed to save user", zap.String("username", username), zap.Error(err))
		return nil, storeFailure("create account", err)
	}
	logger.Info("Signup: account created", zap.String("username", username))

	return &SignupResult{
		User:     account.Public(),
		Delivery: s.deliver(ctx, account.Email, code, account.Verification.ExpiresAt),
	}, nil
}

func (s *DefaultUserService) deliver(ctx context.Context, email, code string, expiresAt time.Time) Delivery {
	d := Delivery{ExpiresAt: expiresAt}
	if err := s.Mailer.SendVerificationCode(ctx, email, code); err != nil {
		utils.GetLogger().Warn("verification email failed", zap.String("email", email), zap.Error(err))
		d.Error = "We could not send the verification email. Please request a new code."
		return d
	}
	d.Sent = true
	return d
}

// Verify checks code against the stored one. Whitespace around the entered
// code is ignored; nothing else is normalized.
func (s *DefaultUserService) Verify(ctx context.Context, username, code string) (*models.PublicUser, error) {
	username = normalizeUsername(username)
	account, err := s.Repo.GetByUsername(ctx, username)
	if isNotFound(err) {
		return nil, utils.NotFoundError("account not found")
	}
	if err != nil {
		return nil, storeFailure("load account", err)
	}
	if account.Verification.Verified {
		pub := account.Public()
		return &pub, nil
	}

	now := s.Now()
	v := account.Verification
	if v.Code == "" || now.After(v.ExpiresAt) {
		return nil, utils.VerificationError(utils.ErrExpired, "verification code expired, request a new one")
	}
	if strings.TrimSpace(code) != v.Code {
		return nil, utils.VerificationError(utils.ErrInvalidCode, "verification code does not match")
	}

	err = s.Repo.Update(ctx, username, store.Document{
		"verification.verified":   true,
		"verification.verifiedAt": timestamp(now),
	})
	if err != nil {
		return nil, storeFailure("verify account", err)
	}
	utils.GetLogger().Info("Verify: email verified", zap.String("username", username))

	account.Verification.Verified = true
	account.Verification.VerifiedAt = &now
	pub := account.Public()
	return &pub, nil
}

// ResendCode issues a fresh code and expiry for an unverified account.
func (s *DefaultUserService) ResendCode(ctx context.Context, username string) (*Delivery, error) {
	username = normalizeUsername(username)
	account, err := s.Repo.GetByUsername(ctx, username)
	if isNotFound(err) {
		return nil, utils.NotFoundError("account not found")
	}
	if err != nil {
		return nil, storeFailure("load account", err)
	}
	if account.Verification.Verified {
		return nil, utils.ValidationError("account is already verified")
	}

	code, err := utils.GenerateNumericOTP()
	if err != nil {
		return nil, err
	}
	now := s.Now()
	expiresAt := now.Add(s.verificationTTL())
	err = s.Repo.Update(ctx, username, store.Document{
		"verification.code":      code,
		"verification.sentAt":    timestamp(now),
		"verification.expiresAt": timestamp(expiresAt),
	})
	if err != nil {
		return nil, storeFailure("store verification code", err)
	}
	d := s.deliver(ctx, account.Email, code, expiresAt)
	return &d, nil
}
