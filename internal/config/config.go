package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

const (
	defaultDBPath      = "./stroycalc.db"
	defaultHistoryFile = "./history.json"
	defaultPort        = "8080"
	defaultLogLevel    = "info"
	defaultCurrency    = "RUB"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	HistorySQLite = "sqlite"
	HistoryFile   = "file"
)

var defaultLocale = language.Russian

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env            string
	DBPath         string
	Port           string
	HistoryBackend string
	HistoryFile    string
	LogLevel       string
	PricesFile     string
	APIToken       string
	Locale         language.Tag
	Currency       string

	warnings []string
}

// Load reads the local .env file, if any, and then the environment.
func Load() (Config, error) {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	if _, err := loadDotEnv(".env"); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults. Missing optional
// values are recorded as warnings; invalid values are errors.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:            strings.ToLower(strings.TrimSpace(getenv("APP_ENV"))),
		DBPath:         getenv("DB_PATH"),
		Port:           getenv("PORT"),
		HistoryBackend: strings.ToLower(strings.TrimSpace(getenv("HISTORY_BACKEND"))),
		HistoryFile:    getenv("HISTORY_FILE"),
		LogLevel:       strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL"))),
		PricesFile:     getenv("PRICES_FILE"),
		APIToken:       getenv("API_TOKEN"),
		Currency:       strings.ToUpper(strings.TrimSpace(getenv("CURRENCY"))),
		Locale:         defaultLocale,
	}

	if cfg.Env == "" {
		cfg.Env = EnvDevelopment
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = HistorySQLite
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = defaultHistoryFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}

	switch cfg.HistoryBackend {
	case HistorySQLite, HistoryFile:
	default:
		return Config{}, fmt.Errorf("HISTORY_BACKEND must be %q or %q, got %q", HistorySQLite, HistoryFile, cfg.HistoryBackend)
	}

	if raw := strings.TrimSpace(getenv("LOCALE")); raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			cfg.warn(fmt.Sprintf("LOCALE %q is not a valid language tag, using %s", raw, defaultLocale))
		} else {
			cfg.Locale = tag
		}
	}

	if cfg.APIToken == "" {
		cfg.warn("API_TOKEN is not set; DELETE /api/history is unauthenticated")
	}
	if cfg.PricesFile == "" {
		cfg.warn("PRICES_FILE is not set; using built-in prices")
	}

	return cfg, nil
}

// IsDev reports whether the process runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == EnvDevelopment
}

// Warnings lists non-fatal configuration problems for the caller to log.
func (c Config) Warnings() []string {
	return append([]string(nil), c.warnings...)
}

func (c *Config) warn(msg string) {
	c.warnings = append(c.warnings, msg)
}
