package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config represents the full application configuration surface.
type Config struct {
	Log      LogConfig
	Server   ServerConfig
	Export   ExportConfig
	Sheets   SheetsConfig
	MongoDB  MongoDBConfig
	WhatsApp WhatsAppConfig
}

// LogConfig holds logger options.
type LogConfig struct {
	Level string
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// ExportConfig controls scheduled publishing of the CSV export.
type ExportConfig struct {
	CronSchedule string
	Timezone     string
}

// SheetsConfig points the export sink at a Google Sheets range. Both fields
// empty disables the sink.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ExportRange     string
}

// MongoDBConfig holds settings for the export archive. An empty URI disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// WhatsAppConfig contains credentials for the Meta WhatsApp Cloud API used to
// deliver the scheduled summary. An empty access token disables it.
type WhatsAppConfig struct {
	AccessToken     string
	PhoneNumberID   string
	BaseURL         string
	APIVersion      string
	ReportRecipient string
}

// Enabled reports whether the Google Sheets sink is configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" || c.SpreadsheetID != ""
}

// Enabled reports whether the MongoDB archive is configured.
func (c MongoDBConfig) Enabled() bool {
	return c.URI != ""
}

// Enabled reports whether WhatsApp notifications are configured.
func (c WhatsAppConfig) Enabled() bool {
	return c.AccessToken != ""
}

// Scheduled reports whether a publishing schedule is configured.
func (c ExportConfig) Scheduled() bool {
	return c.CronSchedule != ""
}

// Location resolves the configured timezone.
func (c ExportConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when the environment carries the configuration.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Export: ExportConfig{
			CronSchedule: os.Getenv("EXPORT_CRON_SCHEDULE"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Sao_Paulo"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			ExportRange:     getenvWithDefault("GOOGLE_SHEET_EXPORT_RANGE", "Registros!A:D"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "plantio"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:     os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID:   os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:         getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:      getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			ReportRecipient: os.Getenv("WHATSAPP_REPORT_RECIPIENT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and that
// partially configured integrations are rejected.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Export.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}
	if _, err := c.Export.Location(); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if c.Export.Scheduled() {
		if _, err := cron.ParseStandard(c.Export.CronSchedule); err != nil {
			return fmt.Errorf("EXPORT_CRON_SCHEDULE is invalid: %w", err)
		}
	}

	if c.Sheets.Enabled() {
		switch {
		case c.Sheets.CredentialsPath == "":
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided with GOOGLE_SHEET_DATABASE_ID")
		case c.Sheets.SpreadsheetID == "":
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided with GOOGLE_SHEETS_CREDENTIALS_PATH")
		case c.Sheets.ExportRange == "":
			return errors.New("GOOGLE_SHEET_EXPORT_RANGE must not be empty")
		}
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	if c.WhatsApp.Enabled() {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
		case c.WhatsApp.ReportRecipient == "":
			return errors.New("WHATSAPP_REPORT_RECIPIENT must be provided")
		case c.WhatsApp.BaseURL == "":
			return errors.New("WHATSAPP_BASE_URL must not be empty")
		case c.WhatsApp.APIVersion == "":
			return errors.New("WHATSAPP_API_VERSION must not be empty")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
