// Package config loads solver settings from the environment.
//
// A .env file in the working directory is loaded first (if present), then
// variables are parsed into Config. Command-line flags override these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Config holds the environment-derived settings.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	LegalFile     string `env:"WORDS_LEGAL_FILE"     envDefault:"./data/legal_wotd.txt"`
	GuessableFile string `env:"WORDS_GUESSABLE_FILE" envDefault:"./data/guessable.txt"`
	Lenient       bool   `env:"WORDS_LENIENT"        envDefault:"false"`

	Seed         uint64 `env:"SOLVER_SEED"           envDefault:"0"`
	MaxGuesses   int    `env:"SOLVER_MAX_GUESSES"    envDefault:"0"`
	InWordWeight int    `env:"SOLVER_IN_WORD_WEIGHT" envDefault:"2"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (ignored when missing) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Weights(); err != nil {
		return Config{}, fmt.Errorf("parse env: SOLVER_IN_WORD_WEIGHT: %w", err)
	}
	if cfg.MaxGuesses < 0 {
		return Config{}, fmt.Errorf("parse env: SOLVER_MAX_GUESSES must be >= 0, got %d", cfg.MaxGuesses)
	}
	return cfg, nil
}

// Weights returns the default scoring weights with the configured InWord
// weight applied, validated by the solver.
func (c Config) Weights() (solver.Weights, error) {
	w := solver.DefaultWeights()
	w.InWord = c.InWordWeight
	if err := w.Validate(); err != nil {
		return solver.Weights{}, err
	}
	return w, nil
}
