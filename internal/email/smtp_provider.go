package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.config.FromAddress()
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendVerification(to string, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", p.config.FrontendURL, token)
	return p.sendTemplated(to, "Confirm your email address", TemplateVerification, TemplateData{
		"Link": link,
	})
}

func (p *SMTPProvider) SendPasswordReset(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", p.config.FrontendURL, token)
	return p.sendTemplated(to, "Reset your password", TemplatePasswordReset, TemplateData{
		"Link": link,
	})
}

func (p *SMTPProvider) sendTemplated(to, subject, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}
	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}

// Close is a no-op; the dialer opens a connection per send.
func (p *SMTPProvider) Close() error {
	return nil
}
