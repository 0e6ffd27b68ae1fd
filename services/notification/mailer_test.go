package notification

import (
	"context"
	"testing"
	"time"

	"barbershop/config"

	"github.com/stretchr/testify/assert"
)

func TestVerificationBody(t *testing.T) {
	body := verificationBody("Fadi <Barbers>", "123456", 15*time.Minute)
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "15 minutes")
	assert.Contains(t, body, "Fadi &lt;Barbers&gt;")
}

func TestNewMailerFallsBackToLog(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.ResendAPIKey = ""

	m := NewMailer()
	assert.IsType(t, &LogMailer{}, m)
	assert.NoError(t, m.SendVerificationCode(context.Background(), "j@x.com", "123456"))
}

func TestNewMailerUsesResend(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.ResendAPIKey = "re_test"
	config.AppConfig.EmailFrom = "Shop <no-reply@example.com>"
	config.AppConfig.BrandName = "Shop"
	config.AppConfig.VerificationTTL = 15 * time.Minute

	m, ok := NewMailer().(*ResendMailer)
	assert.True(t, ok)
	assert.Equal(t, "Shop", m.brand)
}
