package email

// Provider sends transactional mail.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendVerification mails the email-verification link for a fresh account.
	SendVerification(to string, token string) error

	// SendPasswordReset mails the password-reset link.
	SendPasswordReset(to string, token string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases the provider's resources.
	Close() error
}

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
