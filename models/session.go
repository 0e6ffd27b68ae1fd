package models

// StoreMode tells whether state is shared with other processes.
type StoreMode string

const (
	StoreModeLive     StoreMode = "live"
	StoreModeFallback StoreMode = "fallback"
)

// Session is the explicit per-request context built from the caller's token.
type Session struct {
	ActiveUsername string       `json:"username"`
	CurrentUser    *UserAccount `json:"-"`
	StoreMode      StoreMode    `json:"storeMode"`
	IsAdmin        bool         `json:"isAdmin"`
}

// DisplayName is the name stamped on reservations and orders.
func (s Session) DisplayName() string {
	if s.CurrentUser != nil && s.CurrentUser.FullName != "" {
		return s.CurrentUser.FullName
	}
	if s.IsAdmin {
		return "Admin"
	}
	return s.ActiveUsername
}

// PendingApproval reports whether the booking, shop and history views must
// be replaced by the pending-approval notice.
func (s Session) PendingApproval() bool {
	if s.IsAdmin {
		return false
	}
	return s.CurrentUser == nil || !s.CurrentUser.Verification.AdminApproved
}
