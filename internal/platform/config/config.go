package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// WeekdayNames is the Monday-start weekday table used for report and
// e-mail labels. It is passed explicitly into the serializer and
// dispatcher; nothing reads it as ambient state.
var WeekdayNames = [7]string{
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
	"Domingo",
}

type Config struct {
	Addr        string
	DatabaseURL string
	// SessionJWTSecret verifies session tokens issued by the managed
	// identity service. This service never issues its own credentials.
	SessionJWTSecret string
	Environment      string

	EmailEnabled    bool
	EmailFrom       string
	ReportRecipient string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	SMTPUseTLS      bool

	RunMigrations bool
	MigrationsDir string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		SessionJWTSecret: getEnv("SESSION_JWT_SECRET", ""),
		Environment:      getEnv("APP_ENV", "development"),
		EmailEnabled:     getEnvBool("EMAIL_ENABLED", false),
		EmailFrom:        getEnv("EMAIL_FROM", "no-reply@example.com"),
		ReportRecipient:  getEnv("REPORT_RECIPIENT", ""),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:       getEnvBool("SMTP_USE_TLS", true),
		RunMigrations:    getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.SessionJWTSecret) == "" {
		return fmt.Errorf("SESSION_JWT_SECRET must be set in production")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
