// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime knob for the server and headless runs.
type Config struct {
	Addr         string  `env:"CEOSIM_ADDR"          envDefault:":8080"`
	DBPath       string  `env:"CEOSIM_DB_PATH"       envDefault:"data/ceosim.db"`
	SaveSlot     string  `env:"CEOSIM_SAVE_SLOT"     envDefault:"default"`
	CompanyName  string  `env:"CEOSIM_COMPANY_NAME"  envDefault:"Acme Games"`
	AdminKey     string  `env:"CEOSIM_ADMIN_KEY"`
	AnthropicKey string  `env:"ANTHROPIC_API_KEY"`
	Seed         int64   `env:"CEOSIM_SEED"          envDefault:"0"` // 0 = crypto entropy
	OracleChance float64 `env:"CEOSIM_ORACLE_CHANCE" envDefault:"0.1"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.OracleChance < 0 || cfg.OracleChance > 1 {
		return cfg, fmt.Errorf("CEOSIM_ORACLE_CHANCE must be in [0,1], got %v", cfg.OracleChance)
	}
	return cfg, nil
}
