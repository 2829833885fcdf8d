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

// Package money provides a fail-safe, exact-precision monetary value type
// for trading systems: amounts bound to a currency, arithmetic that cannot
// silently mix currencies, configurable rounding strategies, and
// exchange-grade tick quantization.
//
// Every value is immutable and every operation is a pure function returning
// a new value or an error, so values may be shared across goroutines
// without coordination. No operation panics.
package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Money is an exact decimal amount bound to a Currency.
//
// Addition, subtraction, multiplication by a scalar and comparisons are
// exact; precision is preserved rather than truncated to the currency's
// decimal places. Division is the one arithmetic path that rounds, since it
// is the only operator that can produce a non-terminating expansion.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money with the given amount and currency. Any finite
// decimal is a valid amount, so New always succeeds.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// NewWithPrecision creates a Money with the amount rounded to the
// currency's decimal places using the given strategy.
func NewWithPrecision(amount decimal.Decimal, currency Currency, strategy RoundingStrategy) Money {
	return Money{amount: strategy.Round(amount, currency.Precision()), currency: currency}
}

// Zero returns a zero-valued Money in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency the amount is bound to.
func (m Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency's code.
func (m Money) CurrencyCode() string {
	return m.currency.Code()
}

// CurrencyId returns the currency's numeric identifier.
func (m Money) CurrencyId() int32 {
	return m.currency.Id()
}

// Precision returns the currency's number of decimal places.
func (m Money) Precision() int32 {
	return m.currency.Precision()
}

// checkCurrency fails with *CurrencyMismatchError unless other shares m's
// currency code.
func (m Money) checkCurrency(other Money) error {
	if !m.currency.Equal(other.currency) {
		return &CurrencyMismatchError{Expected: m.currency, Actual: other.currency}
	}
	return nil
}

// Add returns m + other. The sum is exact; no rounding is applied.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// AddDecimal returns m with d added to the amount. Never fails.
func (m Money) AddDecimal(d decimal.Decimal) Money {
	return Money{amount: m.amount.Add(d), currency: m.currency}
}

// Sub returns m - other. The difference is exact; no rounding is applied.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// SubDecimal returns m with d subtracted from the amount. Never fails.
func (m Money) SubDecimal(d decimal.Decimal) Money {
	return Money{amount: m.amount.Sub(d), currency: m.currency}
}

// Mul returns m * other with the shared currency. The product is exact.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) Mul(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Mul(other.amount), currency: m.currency}, nil
}

// MulDecimal returns m scaled by d. The product is exact and never fails.
func (m Money) MulDecimal(d decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(d), currency: m.currency}
}

// Div returns m / other, rounded to the currency's decimal places with the
// given strategy. Returns *CurrencyMismatchError if the currencies differ
// and ErrDivisionByZero if other is zero.
func (m Money) Div(other Money, strategy RoundingStrategy) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return m.DivDecimal(other.amount, strategy)
}

// DivDecimal returns m / d, rounded to the currency's decimal places with
// the given strategy. Returns ErrDivisionByZero if d is zero.
func (m Money) DivDecimal(d decimal.Decimal, strategy RoundingStrategy) (Money, error) {
	if d.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	quotient := roundQuotient(m.amount, d, m.currency.Precision(), strategy)
	return Money{amount: quotient, currency: m.currency}, nil
}

// Cmp compares m against other and returns -1, 0 or +1.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.checkCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// Min returns the smaller of m and other.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) Min(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	if m.amount.Cmp(other.amount) <= 0 {
		return m, nil
	}
	return other, nil
}

// Max returns the larger of m and other.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) Max(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	if m.amount.Cmp(other.amount) >= 0 {
		return m, nil
	}
	return other, nil
}

// LessThan reports whether m < other.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.checkCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Cmp(other.amount) < 0, nil
}

// LessThanOrEqual reports whether m <= other.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	if err := m.checkCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Cmp(other.amount) <= 0, nil
}

// GreaterThan reports whether m > other.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.checkCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Cmp(other.amount) > 0, nil
}

// GreaterThanOrEqual reports whether m >= other.
// Returns *CurrencyMismatchError if the currencies differ.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.checkCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Cmp(other.amount) >= 0, nil
}

// LessThanDecimal reports whether the amount is less than d. No second
// currency is involved, so it never fails.
func (m Money) LessThanDecimal(d decimal.Decimal) bool {
	return m.amount.Cmp(d) < 0
}

// LessThanOrEqualDecimal reports whether the amount is at most d.
func (m Money) LessThanOrEqualDecimal(d decimal.Decimal) bool {
	return m.amount.Cmp(d) <= 0
}

// GreaterThanDecimal reports whether the amount is greater than d.
func (m Money) GreaterThanDecimal(d decimal.Decimal) bool {
	return m.amount.Cmp(d) > 0
}

// GreaterThanOrEqualDecimal reports whether the amount is at least d.
func (m Money) GreaterThanOrEqualDecimal(d decimal.Decimal) bool {
	return m.amount.Cmp(d) >= 0
}

// SameCurrency reports whether m and other share a currency code.
func (m Money) SameCurrency(other Money) bool {
	return m.currency.Equal(other.currency)
}

// Equal reports whether m and other have the same currency code and the
// same amount. Amounts are compared numerically: 1.5 equals 1.50.
func (m Money) Equal(other Money) bool {
	return m.currency.Equal(other.currency) && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.Sign() > 0
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// IsPositiveOrZero reports whether the amount is zero or greater.
func (m Money) IsPositiveOrZero() bool {
	return m.amount.Sign() >= 0
}

// IsNegativeOrZero reports whether the amount is zero or less.
func (m Money) IsNegativeOrZero() bool {
	return m.amount.Sign() <= 0
}

// IsInteger reports whether the amount has no fractional part.
func (m Money) IsInteger() bool {
	return m.amount.IsInteger()
}

// HasFraction reports whether the amount has a fractional part.
func (m Money) HasFraction() bool {
	return !m.amount.IsInteger()
}

// Abs returns the absolute value with the same currency.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// Neg returns the negated value with the same currency.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Floor rounds the amount down to the currency's smallest unit: 10.567 USD
// floors to 10.56 USD, while the same amount in BTC (8 places) is already
// on a unit boundary and is unchanged. Use RoundDPWithStrategy(0,
// ToNegativeInfinity) for an integer floor.
func (m Money) Floor() Money {
	return Money{amount: m.amount.RoundFloor(m.currency.Precision()), currency: m.currency}
}

// Ceil rounds the amount up to the currency's smallest unit. See Floor for
// the precision semantics.
func (m Money) Ceil() Money {
	return Money{amount: m.amount.RoundCeil(m.currency.Precision()), currency: m.currency}
}

// Trunc drops fractional digits beyond the currency's smallest unit,
// rounding toward zero.
func (m Money) Trunc() Money {
	return Money{amount: m.amount.RoundDown(m.currency.Precision()), currency: m.currency}
}

// Normalize strips trailing zeros from the amount. The numeric value is
// unchanged.
func (m Money) Normalize() Money {
	return Money{amount: normalizeDecimal(m.amount), currency: m.currency}
}

// Round rounds the amount to the currency's decimal places with the given
// strategy.
func (m Money) Round(strategy RoundingStrategy) Money {
	return Money{amount: strategy.Round(m.amount, m.currency.Precision()), currency: m.currency}
}

// RoundDP rounds the amount to dp decimal places using the default
// strategy (banker's rounding).
func (m Money) RoundDP(dp int32) Money {
	return m.RoundDPWithStrategy(dp, DefaultRoundingStrategy)
}

// RoundDPWithStrategy rounds the amount to dp decimal places with the
// given strategy. The currency and its precision are unchanged.
func (m Money) RoundDPWithStrategy(dp int32, strategy RoundingStrategy) Money {
	return Money{amount: strategy.Round(m.amount, dp), currency: m.currency}
}

// Rescale rounds the amount to a new precision and rebinds the value to a
// copy of the currency carrying that precision. Returns
// *PrecisionOverflowError if precision is outside 0..MaxPrecision.
func (m Money) Rescale(precision int32) (Money, error) {
	currency, err := m.currency.WithPrecision(precision)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: DefaultRoundingStrategy.Round(m.amount, precision), currency: currency}, nil
}

// PercentChangeFrom returns the percentage change from initial to m as an
// exact decimal: (m - initial) / initial * 100. The result is not rounded;
// callers round if a display precision is needed.
// Returns *CurrencyMismatchError if the currencies differ and
// ErrDivisionByZero if initial is zero.
func (m Money) PercentChangeFrom(initial Money) (decimal.Decimal, error) {
	if err := m.checkCurrency(initial); err != nil {
		return decimal.Decimal{}, err
	}
	if initial.amount.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return exactRatio(m.amount.Sub(initial.amount).Mul(oneHundred), initial.amount), nil
}

// NegativePercentChangeFrom returns the inverted percentage change from
// initial to m: (initial - m) / initial * 100. Same failure modes as
// PercentChangeFrom.
func (m Money) NegativePercentChangeFrom(initial Money) (decimal.Decimal, error) {
	change, err := m.PercentChangeFrom(initial)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return change.Neg(), nil
}

// PercentChange returns the percentage change from initial to current.
// Package-level mirror of Money.PercentChangeFrom.
func PercentChange(initial, current Money) (decimal.Decimal, error) {
	return current.PercentChangeFrom(initial)
}

// NegativePercentChange returns the inverted percentage change from initial
// to current.
func NegativePercentChange(initial, current Money) (decimal.Decimal, error) {
	return current.NegativePercentChangeFrom(initial)
}

// String implements fmt.Stringer and renders "<amount> <code>" with the
// amount at the currency's natural precision. The underlying amount is not
// modified; use Amount for the exact value.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixedBank(m.currency.Precision()), m.currency.Code())
}

// moneyJson is the serialized form of a Money. The amount is carried as an
// exact decimal string, never a binary float, so round-trips are lossless.
type moneyJson struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJson{Amount: m.amount, Currency: m.currency})
}

// UnmarshalJSON implements json.Unmarshaler. The embedded currency is
// re-validated during decoding.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("money: unmarshal money: %w", err)
	}
	if raw.Currency.Code() == "" {
		return &InvalidCurrencyError{Reason: "missing currency"}
	}
	m.amount = raw.Amount
	m.currency = raw.Currency
	return nil
}

// exactRatio divides numerator by denominator, returning the exact quotient
// when it terminates within MaxPrecision fractional digits and a
// MaxPrecision-digit rounded quotient otherwise.
func exactRatio(numerator, denominator decimal.Decimal) decimal.Decimal {
	quotient, remainder := numerator.QuoRem(denominator, MaxPrecision)
	if remainder.IsZero() {
		return quotient
	}
	return numerator.DivRound(denominator, MaxPrecision)
}

// normalizeDecimal removes trailing zeros without changing the value.
func normalizeDecimal(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.New(0, 0)
	}
	exp := d.Exponent()
	for exp < 0 {
		truncated := d.Truncate(-exp - 1)
		if !truncated.Equal(d) {
			break
		}
		d = truncated
		exp++
	}
	return d
}
