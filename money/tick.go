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

package money

import (
	"github.com/shopspring/decimal"
)

// Tick quantization: snapping an amount to the nearest valid multiple of an
// exchange-defined tick size (e.g. prices quoted in $0.25 increments).
//
// Tick results keep the original currency and are not re-rounded to the
// currency's decimal places; choosing a tick compatible with the currency's
// precision is the caller's responsibility.

// ToTick snaps the amount to the tick lattice: the amount is divided by the
// tick, the quotient is rounded to an integer under the strategy, and the
// result is multiplied back. Works for any positive tick: 0.001, 0.25, 9,
// 10, 101. Returns *InvalidTickSizeError when tick <= 0.
func (m Money) ToTick(tick decimal.Decimal, strategy RoundingStrategy) (Money, error) {
	if tick.Sign() <= 0 {
		return Money{}, &InvalidTickSizeError{Reason: "tick must be positive, got " + tick.String()}
	}
	// Fast path: a tick of 10^-dp is just rounding to dp decimal places.
	if dp, ok := TickPowerOfTenPlaces(tick); ok {
		return Money{amount: strategy.Round(m.amount, dp), currency: m.currency}, nil
	}
	k := roundQuotient(m.amount, tick, 0, strategy)
	return Money{amount: k.Mul(tick), currency: m.currency}, nil
}

// ToTickNearest snaps to the nearest tick, breaking exact midpoints toward
// the even multiple (banker's rounding on the tick lattice).
func (m Money) ToTickNearest(tick decimal.Decimal) (Money, error) {
	return m.ToTick(tick, MidpointNearestEven)
}

// ToTickDown snaps down to the tick lattice (strict floor; midpoint
// tie-breaking never applies).
func (m Money) ToTickDown(tick decimal.Decimal) (Money, error) {
	return m.ToTick(tick, ToNegativeInfinity)
}

// ToTickUp snaps up to the tick lattice (strict ceiling).
func (m Money) ToTickUp(tick decimal.Decimal) (Money, error) {
	return m.ToTick(tick, ToPositiveInfinity)
}

// IsMultipleOfTick reports whether the amount is an exact multiple of the
// tick. The check is exact decimal arithmetic on the remainder, with no
// epsilon tolerance. A non-positive tick yields false rather than an error,
// since this is a predicate, not a transform.
func (m Money) IsMultipleOfTick(tick decimal.Decimal) bool {
	if tick.Sign() <= 0 {
		return false
	}
	// Power-of-ten ticks: a multiple of 10^-dp is unchanged by truncation
	// at dp places.
	if dp, ok := TickPowerOfTenPlaces(tick); ok {
		return m.amount.Truncate(dp).Equal(m.amount)
	}
	_, r := m.amount.QuoRem(tick, 0)
	return r.IsZero()
}

// TickPowerOfTenPlaces reports whether tick is exactly 10^-dp for some
// dp >= 0 (0.001 -> 3, 0.01 -> 2, 1 -> 0) and returns dp. Such ticks snap
// via plain decimal-place rounding, skipping the divide-and-multiply path.
func TickPowerOfTenPlaces(tick decimal.Decimal) (int32, bool) {
	exp := tick.Exponent()
	if exp > 0 {
		return 0, false
	}
	if !tick.Equal(decimal.New(1, exp)) {
		return 0, false
	}
	return -exp, true
}
