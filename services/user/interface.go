package user

import (
	"context"
	"time"

	"barbershop/config"
	"barbershop/database/repository"
	"barbershop/models"
	"barbershop/services/notification"
	"barbershop/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserService is the account verification and approval gate.
type UserService interface {
	// Registration
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)
	Verify(ctx context.Context, username, code string) (*models.PublicUser, error)
	ResendCode(ctx context.Context, username string) (*Delivery, error)

	// Authentication
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	SessionFor(ctx context.Context, claims *utils.TokenClaims) (models.Session, error)

	// Profile
	UpdateProfile(ctx context.Context, sess models.Session, req ProfileUpdate) (*models.PublicUser, error)

	// Admin
	Approve(ctx context.Context, sess models.Session, username string) error
	ListAccounts(ctx context.Context, sess models.Session) ([]models.PublicUser, error)
	DeleteAccount(ctx context.Context, sess models.Session, username string) error
}

// SignupRequest carries the signup form.
type SignupRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Delivery reports the outcome of sending a verification code. A failed
// delivery does not undo the account.
type Delivery struct {
	Sent      bool      `json:"sent"`
	Error     string    `json:"error,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SignupResult struct {
	User     models.PublicUser `json:"user"`
	Delivery Delivery          `json:"delivery"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token           string            `json:"token"`
	User            models.PublicUser `json:"user"`
	IsAdmin         bool              `json:"isAdmin"`
	PendingApproval bool              `json:"pendingApproval"`
	StoreMode       models.StoreMode  `json:"storeMode"`
	Session         models.Session    `json:"-"`
}

// ProfileUpdate changes the owner's details. An empty Password keeps the
// current one.
type ProfileUpdate struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      repository.UserRepository
	Mailer    notification.Mailer
	StoreMode models.StoreMode

	AdminUsername   string
	AdminPassword   string
	VerificationTTL time.Duration
	SessionTTL      time.Duration
	HashCost        int
	Now             func() time.Time
}

// NewUserService wires the service from AppConfig.
func NewUserService(repo repository.UserRepository, mailer notification.Mailer, mode models.StoreMode) *DefaultUserService {
	cfg := config.AppConfig
	return &DefaultUserService{
		Repo:            repo,
		Mailer:          mailer,
		StoreMode:       mode,
		AdminUsername:   normalizeUsername(cfg.AdminUsername),
		AdminPassword:   cfg.AdminPassword,
		VerificationTTL: cfg.VerificationTTL,
		SessionTTL:      cfg.SessionTTL,
		HashCost:        bcrypt.DefaultCost,
		Now:             time.Now,
	}
}
