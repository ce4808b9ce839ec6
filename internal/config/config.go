package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sheikh-saqib/single-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/single-account-ledger/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config is everything the ledger command needs to run
type Config struct {
	Ledger LedgerConfig  `yaml:"ledger"`                   // the account being opened
	Log    logger.Config `yaml:"log" envPrefix:"LOG_"`     // LOG_LEVEL, LOG_PRETTY
	Kafka  KafkaConfig   `yaml:"kafka" envPrefix:"KAFKA_"` // KAFKA_BROKERS, KAFKA_TOPIC
}

// LedgerConfig describes the single account and how it behaves
type LedgerConfig struct {
	AccountID      string `yaml:"account_id" env:"LEDGER_ACCOUNT_ID"`           // account number shown on the statement
	OpeningBalance int64  `yaml:"opening_balance" env:"LEDGER_OPENING_BALANCE"` // minor units, must not be negative
	Overdraft      string `yaml:"overdraft" env:"LEDGER_OVERDRAFT"`             // "allow" or "reject"
	DateLayout     string `yaml:"date_layout" env:"LEDGER_DATE_LAYOUT"`         // Go time layout of the date column
}

// KafkaConfig is optional; with no brokers nothing is published.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"BROKERS" envSeparator:","`
	Topic   string   `yaml:"topic" env:"TOPIC"`
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Ledger: LedgerConfig{
			AccountID:  "0987654323",
			Overdraft:  ledger.AllowOverdraft.String(),
			DateLayout: ledger.DefaultDateLayout,
		},
		Log:   logger.Config{Level: "info"},
		Kafka: KafkaConfig{Topic: "ledger.transactions"},
	}
}

// Load layers configuration: defaults, then the YAML file named by
// LEDGER_CONFIG_FILE (if any), then environment variables. A .env file in
// the working directory is loaded into the environment first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("LEDGER_CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
