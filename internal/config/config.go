package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"expenses/internal/log"
)

type Config struct {
	// Storage
	ExpensesFile string `env:"EXPENSES_FILE" envDefault:"expenses.json"`

	// Logging
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogNoColor bool   `env:"LOG_NO_COLOR" envDefault:"false"`

	// Presentation
	Currency string `env:"EXPENSES_CURRENCY" envDefault:"€"`
	Locale   string `env:"EXPENSES_LOCALE" envDefault:"it"`
}

// Load reads the configuration from the environment, applying defaults for
// unset keys.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate expenses file
	if strings.TrimSpace(c.ExpensesFile) == "" {
		errors = append(errors, "expenses file path cannot be empty")
	} else if info, err := os.Stat(c.ExpensesFile); err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("expenses file '%s' is a directory", c.ExpensesFile))
	}

	// Validate log level
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	// Validate presentation
	if _, err := language.Parse(c.Locale); err != nil {
		errors = append(errors, fmt.Sprintf("invalid locale '%s': %v", c.Locale, err))
	}
	if n := utf8.RuneCountInString(c.Currency); n > 8 {
		errors = append(errors, fmt.Sprintf("invalid currency symbol '%s': must be at most 8 characters", c.Currency))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// Language returns the locale tag used to format amounts.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Italian
	}
	return tag
}
