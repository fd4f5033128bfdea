package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	ErrMissingToken = errors.New("BOT_TOKEN is missing")
	ErrNoAdmins     = errors.New("ADMIN_IDS is empty or invalid")
)

// Config is the validated, immutable runtime configuration.
type Config struct {
	BotToken          string
	Admins            AdminSet
	LogLevel          string
	PollTimeout       time.Duration
	StatsDB           string
	SentryDSN         string
	SentryEnvironment string
}

// environment mirrors the raw process environment before validation.
type environment struct {
	BotToken          string        `env:"BOT_TOKEN" validate:"required"`
	AdminIDs          string        `env:"ADMIN_IDS" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	PollTimeout       time.Duration `env:"POLL_TIMEOUT,default=10s" validate:"gt=0"`
	StatsDB           string        `env:"STATS_DB"`
	SentryDSN         string        `env:"SENTRY_DSN" validate:"omitempty,url"`
	SentryEnvironment string        `env:"SENTRY_ENVIRONMENT,default=production"`
}

// Load reads .env (if present) and builds the configuration from the process
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return FromEnvSet(es)
}

// FromEnvSet builds the configuration from an explicit set of variables.
func FromEnvSet(es env.EnvSet) (*Config, error) {
	var raw environment
	if err := env.Unmarshal(es, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	raw.BotToken = strings.TrimSpace(raw.BotToken)

	if err := validator.New().Struct(raw); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.Field() {
				case "BotToken":
					return nil, ErrMissingToken
				case "AdminIDs":
					return nil, ErrNoAdmins
				}
			}
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	admins, err := ParseAdminIDs(raw.AdminIDs)
	if err != nil {
		return nil, err
	}

	return &Config{
		BotToken:          raw.BotToken,
		Admins:            admins,
		LogLevel:          strings.ToUpper(raw.LogLevel),
		PollTimeout:       raw.PollTimeout,
		StatsDB:           raw.StatsDB,
		SentryDSN:         raw.SentryDSN,
		SentryEnvironment: raw.SentryEnvironment,
	}, nil
}
