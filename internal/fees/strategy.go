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

package fees

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tickwise/finmoney-go/money"
)

// Strategy calculates percentage-based trading fees on monetary values.
// Fees inherit the currency of the price they are computed from, so fee
// arithmetic stays currency-checked all the way through.
type Strategy struct {
	Percent decimal.Decimal // e.g., 0.001 for 0.1% (10 bps)
}

// NewStrategy creates a new percentage-based fee strategy
func NewStrategy(percent decimal.Decimal) *Strategy {
	return &Strategy{Percent: percent}
}

// CreateStrategy creates a percentage-based fee strategy from configuration
func CreateStrategy(feePercent string) (*Strategy, error) {
	percent, err := decimal.NewFromString(feePercent)
	if err != nil {
		return nil, fmt.Errorf("invalid fee percent: %w", err)
	}
	if percent.IsNegative() {
		return nil, fmt.Errorf("fee percent cannot be negative")
	}
	return NewStrategy(percent), nil
}

// Compute calculates the fee for a given quantity and price. The fee is in
// the price's currency and is exact; callers snap or round for display.
func (s *Strategy) Compute(qty decimal.Decimal, price money.Money) money.Money {
	notional := price.MulDecimal(qty)
	return s.ComputeFromNotional(notional)
}

// ComputeFromNotional calculates the fee from a notional value (qty * price)
func (s *Strategy) ComputeFromNotional(notional money.Money) money.Money {
	return notional.MulDecimal(s.Percent)
}

// Notional computes the notional value (quantity * price)
func Notional(qty decimal.Decimal, price money.Money) money.Money {
	return price.MulDecimal(qty)
}

// TotalCost computes the notional plus the fee. Fails if the fee was
// computed in a different currency than the notional.
func TotalCost(notional, fee money.Money) (money.Money, error) {
	return notional.Add(fee)
}

// EffectivePrice computes the per-unit price implied by a total cost.
// Returns money.ErrDivisionByZero when qty is zero.
func EffectivePrice(totalCost money.Money, qty decimal.Decimal) (money.Money, error) {
	return totalCost.DivDecimal(qty, money.DefaultRoundingStrategy)
}

// FeePercentOf converts a fee amount back to a percentage of the notional.
// Fails on mismatched currencies or a zero notional.
func FeePercentOf(fee, notional money.Money) (decimal.Decimal, error) {
	if err := assertSameCurrency(fee, notional); err != nil {
		return decimal.Decimal{}, err
	}
	if notional.IsZero() {
		return decimal.Decimal{}, money.ErrDivisionByZero
	}
	return fee.Amount().Div(notional.Amount()).Mul(decimal.NewFromInt(100)), nil
}

// PriceAdjuster applies a fee strategy to market prices and keeps the
// results on the venue's tick lattice.
type PriceAdjuster struct {
	Strategy *Strategy
	TickSize decimal.Decimal
}

// NewPriceAdjuster creates a new price adjuster with a fee strategy and the
// venue tick size
func NewPriceAdjuster(strategy *Strategy, tickSize decimal.Decimal) *PriceAdjuster {
	return &PriceAdjuster{Strategy: strategy, TickSize: tickSize}
}

// AdjustBid reduces a bid price to account for the fee when the user is
// selling, then snaps down to the tick lattice so the quote stays valid.
func (a *PriceAdjuster) AdjustBid(price money.Money, qty decimal.Decimal) (money.Money, error) {
	adjusted, err := a.adjust(price, qty, false)
	if err != nil {
		return money.Money{}, err
	}
	return adjusted.ToTickDown(a.TickSize)
}

// AdjustAsk increases an ask price to account for the fee when the user is
// buying, then snaps up to the tick lattice.
func (a *PriceAdjuster) AdjustAsk(price money.Money, qty decimal.Decimal) (money.Money, error) {
	adjusted, err := a.adjust(price, qty, true)
	if err != nil {
		return money.Money{}, err
	}
	return adjusted.ToTickUp(a.TickSize)
}

func (a *PriceAdjuster) adjust(price money.Money, qty decimal.Decimal, add bool) (money.Money, error) {
	if qty.IsZero() {
		return price, nil
	}

	fee := a.Strategy.Compute(qty, price)
	notional := Notional(qty, price)

	var adjustedNotional money.Money
	var err error
	if add {
		adjustedNotional, err = notional.Add(fee)
	} else {
		adjustedNotional, err = notional.Sub(fee)
	}
	if err != nil {
		return money.Money{}, err
	}

	return adjustedNotional.DivDecimal(qty, money.DefaultRoundingStrategy)
}

func assertSameCurrency(a, b money.Money) error {
	if !a.SameCurrency(b) {
		return &money.CurrencyMismatchError{Expected: a.Currency(), Actual: b.Currency()}
	}
	return nil
}
