package notification

import (
	"context"
	"fmt"
	"html"
	"time"

	"barbershop/config"
	"barbershop/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Mailer dispatches verification codes out of band.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// NewMailer returns the Resend mailer when an API key is configured and the
// logging mailer otherwise.
func NewMailer() Mailer {
	cfg := config.AppConfig
	if cfg.ResendAPIKey == "" {
		utils.GetLogger().Warn("notification: RESEND_API_KEY not set, verification codes will only be logged")
		return &LogMailer{}
	}
	return NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.BrandName, cfg.VerificationTTL)
}

// ResendMailer sends transactional email through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	brand  string
	expiry time.Duration
}

func NewResendMailer(apiKey, from, brand string, expiry time.Duration) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		brand:  brand,
		expiry: expiry,
	}
}

func (m *ResendMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: fmt.Sprintf("%s verification code", m.brand),
		Html:    verificationBody(m.brand, code, m.expiry),
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send verification email to %s: %w", to, err)
	}
	utils.GetLogger().Info("notification: verification email sent", zap.String("to", to), zap.String("id", sent.Id))
	return nil
}

func verificationBody(brand, code string, expiry time.Duration) string {
	return fmt.Sprintf(
		`<div style="font-family:sans-serif"><h2>%s</h2><p>Your verification code is:</p><p style="font-size:28px;letter-spacing:6px"><strong>%s</strong></p><p>This code expires in %d minutes.</p></div>`,
		html.EscapeString(brand), html.EscapeString(code), int(expiry.Minutes()),
	)
}

// LogMailer writes the code to the log instead of sending it.
type LogMailer struct{}

func (LogMailer) SendVerificationCode(_ context.Context, to, code string) error {
	utils.GetLogger().Info("notification: verification code (email disabled)", zap.String("to", to), zap.String("code", code))
	return nil
}
