/**
 * Copyright 2025-present Tickwise, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the complete application configuration
type Config struct {
	Exchange ExchangeConfig
	Server   ServerConfig
	Ledger   LedgerConfig
}

// ExchangeConfig holds the venue settings the demo binaries price against
type ExchangeConfig struct {
	Currency   string // currency code for prices, e.g. "USD"
	TickSize   string // price increment, e.g. "0.25"
	FeePercent string // e.g. "0.002" for 20 bps (0.2%)
}

// ServerConfig holds logging settings
type ServerConfig struct {
	LogLevel string
	LogJson  bool
}

// LedgerConfig holds trade-ledger database settings
type LedgerConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Default configuration
	cfg := &Config{
		Exchange: ExchangeConfig{
			Currency:   "USD",
			TickSize:   "0.25",
			FeePercent: "0.002", // 0.2% (20 bps)
		},
		Server: ServerConfig{
			LogLevel: "info",
			LogJson:  false,
		},
		Ledger: LedgerConfig{
			Path: "ledger.db",
		},
	}

	// Load from environment variables
	loadFromEnv(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	// Exchange settings
	if v := os.Getenv("EXCHANGE_CURRENCY"); v != "" {
		cfg.Exchange.Currency = v
	}
	if v := os.Getenv("EXCHANGE_TICK_SIZE"); v != "" {
		cfg.Exchange.TickSize = v
	}
	if v := os.Getenv("FEE_PERCENT"); v != "" {
		cfg.Exchange.FeePercent = v
	}

	// Server
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("LOG_JSON"); v != "" {
		cfg.Server.LogJson = v == "true"
	}

	// Ledger
	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.Ledger.Path = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Exchange.Validate(); err != nil {
		return fmt.Errorf("exchange config: %w", err)
	}
	return nil
}

// Validate checks if an exchange config is valid
func (e *ExchangeConfig) Validate() error {
	if e.Currency == "" {
		return fmt.Errorf("EXCHANGE_CURRENCY is required")
	}

	if e.TickSize == "" {
		return fmt.Errorf("EXCHANGE_TICK_SIZE is required")
	}
	tick, err := decimal.NewFromString(e.TickSize)
	if err != nil {
		return fmt.Errorf("invalid EXCHANGE_TICK_SIZE: %w", err)
	}
	if tick.Sign() <= 0 {
		return fmt.Errorf("EXCHANGE_TICK_SIZE must be positive")
	}

	if e.FeePercent == "" {
		return fmt.Errorf("FEE_PERCENT is required")
	}
	percent, err := decimal.NewFromString(e.FeePercent)
	if err != nil {
		return fmt.Errorf("invalid FEE_PERCENT: %w", err)
	}
	if percent.IsNegative() {
		return fmt.Errorf("FEE_PERCENT cannot be negative")
	}

	return nil
}

// SetupLogger initializes the global Zap logger with structured JSON format
func SetupLogger(level string, useJSON bool) {
	// Always use JSON structured logging with production config
	zapConfig := zap.NewProductionConfig()

	// Use ISO8601 timestamps instead of epoch
	zapConfig.EncoderConfig.TimeKey = "ts"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Enable caller information (file:line)
	zapConfig.EncoderConfig.CallerKey = "caller"
	zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	// Set other encoder fields
	zapConfig.EncoderConfig.LevelKey = "level"
	zapConfig.EncoderConfig.MessageKey = "msg"
	zapConfig.EncoderConfig.StacktraceKey = "stacktrace"

	// Set log level
	switch level {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Build with caller skip to show correct file:line
	logger, err := zapConfig.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	zap.ReplaceGlobals(logger)
}
