package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	RosterSourceWorkbook = "workbook"
	RosterSourcePostgres = "postgres"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development production"`
	Log         struct {
		Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
		Format string `env:"FORMAT" envDefault:"console" validate:"oneof=console json"`
	} `envPrefix:"LOG_"`
	Roster struct {
		Source string `env:"SOURCE" envDefault:"workbook" validate:"oneof=workbook postgres"`
		// Empty means the first sheet of the workbook.
		Sheet string `env:"SHEET"`
	} `envPrefix:"ROSTER_"`
	Plan struct {
		Sheet           string `env:"SHEET" envDefault:"Plan" validate:"required"`
		RouteColumn     string `env:"ROUTE_COLUMN" envDefault:"A" validate:"required,alpha,uppercase,max=3"`
		AssignedColumn  string `env:"ASSIGNED_COLUMN" envDefault:"F" validate:"required,alpha,uppercase,max=3"`
		PlannedColumn   string `env:"PLANNED_COLUMN" envDefault:"I" validate:"required,alpha,uppercase,max=3"`
		LargeGapMinutes int    `env:"LARGE_GAP_MINUTES" envDefault:"60" validate:"gte=0"`
	} `envPrefix:"PLAN_"`
	Solver struct {
		Timeout int  `env:"TIMEOUT" envDefault:"0" validate:"gte=0"` // seconds, 0 = no deadline
		Verbose bool `env:"VERBOSE" envDefault:"false"`
	} `envPrefix:"SOLVER_"`
	Database struct {
		URL      string `env:"URL"`
		SeedPath string `env:"SEED_PATH" envDefault:"data/seeds/roster.json"`
	} `envPrefix:"DATABASE_"`
}

// SolverTimeout returns the configured solver deadline; zero means none.
func (c *Config) SolverTimeout() time.Duration {
	return time.Duration(c.Solver.Timeout) * time.Second
}

// LargeGap returns the gap above which an assigned driver is flagged.
func (c *Config) LargeGap() time.Duration {
	return time.Duration(c.Plan.LargeGapMinutes) * time.Minute
}

// Load reads .env (when present) and the process environment into a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// Only the first error keeps the log readable.
			return nil, fmt.Errorf("load config: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.Roster.Source == RosterSourcePostgres && cfg.Database.URL == "" {
		return nil, errors.New("load config: DATABASE_URL is required when ROSTER_SOURCE=postgres")
	}

	return cfg, nil
}
