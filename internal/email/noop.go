package email

import "wealthcoach_backend/internal/logger"

// NoopProvider logs outgoing mail instead of sending it. Used when SMTP is
// not configured, which is the default in development.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Info("email suppressed (no smtp configured)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendVerification(to string, token string) error {
	logger.Info("verification email suppressed (no smtp configured)", "to", to)
	return nil
}

func (p *NoopProvider) SendPasswordReset(to string, token string) error {
	logger.Info("password reset email suppressed (no smtp configured)", "to", to)
	return nil
}

func (p *NoopProvider) Validate() error { return nil }

func (p *NoopProvider) Close() error { return nil }
