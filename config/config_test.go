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
	"os"
	"testing"
)

func TestExchangeConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ExchangeConfig
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid",
			cfg: ExchangeConfig{
				Currency:   "USD",
				TickSize:   "0.25",
				FeePercent: "0.002",
			},
			wantErr: false,
		},
		{
			name: "missing currency",
			cfg: ExchangeConfig{
				TickSize:   "0.25",
				FeePercent: "0.002",
			},
			wantErr: true,
			errMsg:  "EXCHANGE_CURRENCY is required",
		},
		{
			name: "missing tick size",
			cfg: ExchangeConfig{
				Currency:   "USD",
				FeePercent: "0.002",
			},
			wantErr: true,
			errMsg:  "EXCHANGE_TICK_SIZE is required",
		},
		{
			name: "invalid tick size",
			cfg: ExchangeConfig{
				Currency:   "USD",
				TickSize:   "invalid",
				FeePercent: "0.002",
			},
			wantErr: true,
		},
		{
			name: "zero tick size",
			cfg: ExchangeConfig{
				Currency:   "USD",
				TickSize:   "0",
				FeePercent: "0.002",
			},
			wantErr: true,
			errMsg:  "EXCHANGE_TICK_SIZE must be positive",
		},
		{
			name: "negative tick size",
			cfg: ExchangeConfig{
				Currency:   "USD",
				TickSize:   "-0.25",
				FeePercent: "0.002",
			},
			wantErr: true,
			errMsg:  "EXCHANGE_TICK_SIZE must be positive",
		},
		{
			name: "missing fee percent",
			cfg: ExchangeConfig{
				Currency: "USD",
				TickSize: "0.25",
			},
			wantErr: true,
			errMsg:  "FEE_PERCENT is required",
		},
		{
			name: "invalid fee percent",
			cfg: ExchangeConfig{
				Currency:   "USD",
				TickSize:   "0.25",
				FeePercent: "invalid",
			},
			wantErr: true,
		},
		{
			name: "negative fee percent",
			cfg: ExchangeConfig{
				Currency:   "USD",
				TickSize:   "0.25",
				FeePercent: "-0.002",
			},
			wantErr: true,
			errMsg:  "FEE_PERCENT cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Exchange.Currency != "USD" {
		t.Errorf("Exchange.Currency = %q, want USD", cfg.Exchange.Currency)
	}
	if cfg.Exchange.TickSize != "0.25" {
		t.Errorf("Exchange.TickSize = %q, want 0.25", cfg.Exchange.TickSize)
	}
	if cfg.Exchange.FeePercent != "0.002" {
		t.Errorf("Exchange.FeePercent = %q, want 0.002", cfg.Exchange.FeePercent)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("Server.LogLevel = %q, want info", cfg.Server.LogLevel)
	}
	if cfg.Ledger.Path != "ledger.db" {
		t.Errorf("Ledger.Path = %q, want ledger.db", cfg.Ledger.Path)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("EXCHANGE_CURRENCY", "EUR")
	t.Setenv("EXCHANGE_TICK_SIZE", "0.05")
	t.Setenv("FEE_PERCENT", "0.001")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LEDGER_PATH", "/tmp/test-ledger.db")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Exchange.Currency != "EUR" {
		t.Errorf("Exchange.Currency = %q, want EUR", cfg.Exchange.Currency)
	}
	if cfg.Exchange.TickSize != "0.05" {
		t.Errorf("Exchange.TickSize = %q, want 0.05", cfg.Exchange.TickSize)
	}
	if cfg.Exchange.FeePercent != "0.001" {
		t.Errorf("Exchange.FeePercent = %q, want 0.001", cfg.Exchange.FeePercent)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("Server.LogLevel = %q, want debug", cfg.Server.LogLevel)
	}
	if !cfg.Server.LogJson {
		t.Error("Server.LogJson = false, want true")
	}
	if cfg.Ledger.Path != "/tmp/test-ledger.db" {
		t.Errorf("Ledger.Path = %q, want /tmp/test-ledger.db", cfg.Ledger.Path)
	}
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("EXCHANGE_TICK_SIZE", "-1")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() error = nil, want validation error")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"EXCHANGE_CURRENCY", "EXCHANGE_TICK_SIZE", "FEE_PERCENT",
		"LOG_LEVEL", "LOG_JSON", "LEDGER_PATH",
	} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}
