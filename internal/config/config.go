package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds every runtime setting. It is built once at startup and passed
// down explicitly; there is no package-level instance.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		// TTLHours bounds the lifetime of issued bearer tokens. Default 24.
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		TemplatesDir string `yaml:"templates_dir"`
		FrontendURL  string `yaml:"frontend_url"`
	} `yaml:"email"`

	Storage struct {
		Type     string `yaml:"type"`      // local
		BasePath string `yaml:"base_path"` // for local storage
		BaseURL  string `yaml:"base_url"`  // public URL base
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // allowed MIME types
	} `yaml:"upload"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

// Load reads configuration either from environment variables (when DATABASE_URL
// is set, the mode used by tests and containers) or from a YAML file at
// CONFIG_PATH (default config/config.yaml).
func Load() (*Config, error) {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}

		cfg.applyDefaults()
		return &cfg, nil
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if ttl, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS")); err == nil && ttl > 0 {
		cfg.JWT.TTLHours = ttl
	}

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("EMAIL_FROM")
	cfg.Email.FrontendURL = os.Getenv("FRONTEND_URL")

	cfg.Storage.BasePath = os.Getenv("STORAGE_BASE_PATH")

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.JWT.TTLHours == 0 {
		c.JWT.TTLHours = 24
	}
	if c.Email.FrontendURL == "" {
		c.Email.FrontendURL = "http://localhost:3000"
	}
	if c.Email.TemplatesDir == "" {
		c.Email.TemplatesDir = "templates"
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./uploads"
	}
	if c.Upload.MaxSize == 0 {
		c.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{
			"application/pdf", "image/jpeg", "image/png",
		}
	}
}
