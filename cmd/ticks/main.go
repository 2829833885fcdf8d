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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tickwise/finmoney-go/config"
	"github.com/tickwise/finmoney-go/internal/fees"
	"github.com/tickwise/finmoney-go/internal/ledger"
	"github.com/tickwise/finmoney-go/money"
)

var (
	symbol = flag.String("symbol", "", "Product symbol (e.g., BTC-USD)")
	side   = flag.String("side", "buy", "Order side: buy or sell")
	price  = flag.String("price", "", "Raw price to snap onto the tick lattice")
	qty    = flag.String("qty", "1", "Order quantity used for the fee computation")
	list   = flag.Int("list", 0, "List the N most recent ledger entries for --symbol instead of snapping")
)

func main() {
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// snapResult is the JSON output for one quantization
type snapResult struct {
	Symbol   string `json:"symbol"`
	Side     string `json:"side"`
	Currency string `json:"currency"`
	TickSize string `json:"tick_size"`

	RawPrice string `json:"raw_price"`
	Nearest  string `json:"nearest"`
	SnapDown string `json:"snap_down"`
	SnapUp   string `json:"snap_up"`
	OnTick   bool   `json:"on_tick"`

	Qty           string `json:"qty"`
	Fee           string `json:"fee"`
	AdjustedQuote string `json:"adjusted_quote"`

	EntryId string `json:"entry_id"`
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	config.SetupLogger(cfg.Server.LogLevel, cfg.Server.LogJson)
	defer zap.L().Sync()

	store, err := ledger.NewStore(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if *list > 0 {
		return listEntries(store, *list)
	}
	return snapPrice(cfg, store)
}

func snapPrice(cfg *config.Config, store *ledger.Store) error {
	if *symbol == "" {
		return fmt.Errorf("--symbol is required")
	}
	if *price == "" {
		return fmt.Errorf("--price is required")
	}
	orderSide := strings.ToUpper(*side)
	if orderSide != "BUY" && orderSide != "SELL" {
		return fmt.Errorf("--side must be buy or sell")
	}

	currency, err := resolveCurrency(cfg.Exchange.Currency)
	if err != nil {
		return err
	}

	rawPrice, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("invalid --price: %w", err)
	}
	quantity, err := decimal.NewFromString(*qty)
	if err != nil {
		return fmt.Errorf("invalid --qty: %w", err)
	}

	tick, err := decimal.NewFromString(cfg.Exchange.TickSize)
	if err != nil {
		return fmt.Errorf("invalid tick size: %w", err)
	}

	raw := money.New(rawPrice, currency)

	// Snap the raw price three ways so the caller can pick a side.
	nearest, err := raw.ToTickNearest(tick)
	if err != nil {
		return err
	}
	down, err := raw.ToTickDown(tick)
	if err != nil {
		return err
	}
	up, err := raw.ToTickUp(tick)
	if err != nil {
		return err
	}

	zap.L().Info("snapped price to tick lattice",
		zap.String("symbol", *symbol),
		zap.String("raw", raw.String()),
		zap.String("tick", tick.String()),
		zap.String("nearest", nearest.String()))

	// Fee on the snapped notional, then a fee-aware quote back on the lattice.
	strategy, err := fees.CreateStrategy(cfg.Exchange.FeePercent)
	if err != nil {
		return err
	}
	fee := strategy.Compute(quantity, nearest)

	adjuster := fees.NewPriceAdjuster(strategy, tick)
	var quote money.Money
	if orderSide == "BUY" {
		quote, err = adjuster.AdjustAsk(raw, quantity)
	} else {
		quote, err = adjuster.AdjustBid(raw, quantity)
	}
	if err != nil {
		return err
	}

	entry, err := ledger.NewEntry(*symbol, orderSide, raw, nearest, down, up, fee,
		tick.String(), quantity.String())
	if err != nil {
		return err
	}
	if err := store.InsertEntry(entry); err != nil {
		return err
	}

	return output(&snapResult{
		Symbol:        *symbol,
		Side:          orderSide,
		Currency:      currency.Code(),
		TickSize:      tick.String(),
		RawPrice:      raw.Amount().String(),
		Nearest:       nearest.Amount().String(),
		SnapDown:      down.Amount().String(),
		SnapUp:        up.Amount().String(),
		OnTick:        raw.IsMultipleOfTick(tick),
		Qty:           quantity.String(),
		Fee:           fee.Round(money.DefaultRoundingStrategy).Amount().String(),
		AdjustedQuote: quote.Amount().String(),
		EntryId:       entry.Id,
	})
}

func listEntries(store *ledger.Store, limit int) error {
	if *symbol == "" {
		return fmt.Errorf("--symbol is required")
	}

	entries, err := store.ListEntries(*symbol, limit)
	if err != nil {
		return err
	}
	return output(entries)
}

// resolveCurrency maps a configured code to a known currency, falling back
// to a 2-decimal currency for unknown codes.
func resolveCurrency(code string) (money.Currency, error) {
	for _, c := range []money.Currency{
		money.USD, money.EUR, money.GBP, money.JPY,
		money.BTC, money.ETH, money.USDT,
	} {
		if strings.EqualFold(c.Code(), code) {
			return c, nil
		}
	}
	return money.NewCurrency(0, code, code, 2)
}

func output(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
