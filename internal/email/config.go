package email

import "fmt"

// SMTPConfig holds the connection settings for the SMTP provider.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	FrontendURL string
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("smtp from email is required")
	}
	return nil
}

// FromAddress formats the sender header.
func (c *SMTPConfig) FromAddress() string {
	if c.FromName == "" {
		return c.FromEmail
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromEmail)
}
