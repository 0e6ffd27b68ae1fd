package config

import (
	"encoding/json"
	"os"
	"strings"
)

// ServiceAccount holds essential fields from your JSON key
type ServiceAccount struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ReadServiceAccount loads the Firebase service account key. It returns
// false when no usable key is configured.
func ReadServiceAccount(path string) (*ServiceAccount, bool) {
	if strings.TrimSpace(path) == "" {
		return nil, false
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, false
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, false
	}
	return &sa, true
}

// IsFirebaseConfigured reports whether live Firestore credentials are present.
func IsFirebaseConfigured() bool {
	_, ok := ReadServiceAccount(AppConfig.FirebaseCredentialsFile)
	return ok
}
