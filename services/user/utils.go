package user

import (
	"errors"
	"strings"
	"time"

	"barbershop/database/store"
	"barbershop/utils"

	"golang.org/x/crypto/bcrypt"
)

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n")
}

func (s *DefaultUserService) hashPassword(password string) (string, error) {
	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *DefaultUserService) isAdmin(username string) bool {
	return username != "" && username == s.AdminUsername
}

func (s *DefaultUserService) verificationTTL() time.Duration {
	if s.VerificationTTL <= 0 {
		return 15 * time.Minute
	}
	return s.VerificationTTL
}

func storeFailure(op string, err error) error {
	if utils.KindOf(err) != "" {
		return err
	}
	return utils.StoreError(op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
