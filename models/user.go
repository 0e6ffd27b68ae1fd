package models

import "time"

// Verification tracks the three-stage activation of an account:
// email pending -> email verified -> admin approved.
type Verification struct {
	Code          string     `json:"code,omitempty"`
	Verified      bool       `json:"verified"`
	AdminApproved bool       `json:"adminApproved"`
	SentAt        time.Time  `json:"sentAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
}

// UserAccount is stored in the users collection keyed by lowercase username.
type UserAccount struct {
	Username     string       `json:"-"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"password"`
	Verification Verification `json:"verification"`
}

// PublicUser is the safe view of an account returned to clients.
type PublicUser struct {
	Username      string `json:"username"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Verified      bool   `json:"verified"`
	AdminApproved bool   `json:"adminApproved"`
}

func (u UserAccount) Public() PublicUser {
	return PublicUser{
		Username:      u.Username,
		FullName:      u.FullName,
		Email:         u.Email,
		Verified:      u.Verification.Verified,
		AdminApproved: u.Verification.AdminApproved,
	}
}
