package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// MediaConfig holds configuration for the hosted media store used for
// event image uploads.
type MediaConfig struct {
	UploadURL string
	APIKey    string
	Folder    string
}

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// EmailConfig holds configuration for the outbound mailer.
type EmailConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// Config holds all configuration for the application
type Config struct {
	DBUrl          string
	Environment    string
	Port           string
	PublicBaseURL  string
	AllowedOrigins []string
	Media          MediaConfig
	Email          EmailConfig
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
// DATABASE_URL is required; Load returns an error without it so startup
// fails before any request is served.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables and a missing
	// .env file is expected.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		DBUrl:         os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		Media: MediaConfig{
			UploadURL: os.Getenv("MEDIA_UPLOAD_URL"),
			APIKey:    os.Getenv("MEDIA_API_KEY"),
			Folder:    os.Getenv("MEDIA_FOLDER"),
		},
		Email: EmailConfig{
			Provider:    os.Getenv("EMAIL_PROVIDER"),
			FromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:    os.Getenv("EMAIL_FROM_NAME"),
			SES: SESConfig{
				Region:             os.Getenv("AWS_REGION"),
				AccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
				InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
			},
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Media.Folder == "" {
		cfg.Media.Folder = "events"
	}

	if cfg.DBUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}
