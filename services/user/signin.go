package user

import (
	"context"

	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the reserved administrator credential before any account
// lookup. Unverified accounts are refused without issuing a new code.
func (s *DefaultUserService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, utils.ValidationError("username and password are required")
	}

	if s.isAdmin(username) {
		if password != s.AdminPassword {
			return nil, utils.AuthError("invalid username or password")
		}
		sess, err := s.adminSession(ctx)
		if err != nil {
			return nil, err
		}
		return s.issue(sess)
	}

	account, err := s.Repo.GetByUsername(ctx, username)
	if isNotFound(err) {
		return nil, utils.AuthError("invalid username or password")
	}
	if err != nil {
		logger.Error("Login: failed to fetch user", zap.String("username", username), zap.Error(err))
		return nil, storeFailure("load account", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, utils.AuthError("invalid username or password")
	}
	if !account.Verification.Verified {
		return nil, utils.VerificationError(utils.ErrVerificationRequired, "verify your email before signing in")
	}

	return s.issue(models.Session{
		ActiveUsername: username,
		CurrentUser:    account,
		StoreMode:      s.StoreMode,
	})
}

func (s *DefaultUserService) issue(sess models.Session) (*AuthResponse, error) {
	token, err := utils.GenerateToken(sess.ActiveUsername, sess.IsAdmin, s.SessionTTL)
	if err != nil {
		utils.GetLogger().Error("Login: failed to sign token", zap.Error(err))
		return nil, err
	}
	resp := &AuthResponse{
		Token:           token,
		IsAdmin:         sess.IsAdmin,
		PendingApproval: sess.PendingApproval(),
		StoreMode:       sess.StoreMode,
		Session:         sess,
	}
	if sess.CurrentUser != nil {
		resp.User = sess.CurrentUser.Public()
	} else {
		resp.User = models.PublicUser{Username: sess.ActiveUsername, FullName: sess.DisplayName()}
	}
	utils.GetLogger().Info("Login: session issued",
		zap.String("username", sess.ActiveUsername),
		zap.Bool("admin", sess.IsAdmin),
		zap.Bool("pendingApproval", resp.PendingApproval))
	return resp, nil
}

// adminSession attaches the admin's profile document when one exists.
func (s *DefaultUserService) adminSession(ctx context.Context) (models.Session, error) {
	sess := models.Session{ActiveUsername: s.AdminUsername, IsAdmin: true, StoreMode: s.StoreMode}
	profile, err := s.Repo.GetByUsername(ctx, s.AdminUsername)
	switch {
	case err == nil:
		sess.CurrentUser = profile
	case !isNotFound(err):
		return sess, storeFailure("load admin profile", err)
	}
	return sess, nil
}

// SessionFor rebuilds the request session from token claims and a fresh
// account read.
func (s *DefaultUserService) SessionFor(ctx context.Context, claims *utils.TokenClaims) (models.Session, error) {
	username := normalizeUsername(claims.Username)
	if claims.Admin {
		if !s.isAdmin(username) {
			return models.Session{}, utils.AuthError("invalid session")
		}
		return s.adminSession(ctx)
	}
	if s.isAdmin(username) {
		return models.Session{}, utils.AuthError("invalid session")
	}

	account, err := s.Repo.GetByUsername(ctx, username)
	if isNotFound(err) {
		return models.Session{}, utils.AuthError("account no longer exists")
	}
	if err != nil {
		return models.Session{}, storeFailure("load account", err)
	}
	if !account.Verification.Verified {
		return models.Session{}, utils.VerificationError(utils.ErrVerificationRequired, "verify your email before signing in")
	}
	return models.Session{ActiveUsername: username, CurrentUser: account, StoreMode: s.StoreMode}, nil
}
