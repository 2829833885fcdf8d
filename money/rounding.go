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

// RoundingStrategy selects how a decimal value is rounded when precision is
// reduced, such as during division or tick snapping.
//
// The three Midpoint strategies round non-tie values to the nearest
// representable value at the target precision and differ only in how an
// exact half is broken. The remaining strategies are directional and ignore
// midpoints entirely.
type RoundingStrategy uint8

const (
	// MidpointNearestEven breaks an exact half toward the neighbor whose
	// last kept digit is even (banker's rounding): 6.5 -> 6, 7.5 -> 8,
	// -6.5 -> -6, -7.5 -> -8. This is the default strategy because it
	// avoids systematic upward bias over repeated roundings.
	MidpointNearestEven RoundingStrategy = iota

	// MidpointAwayFromZero breaks an exact half away from zero:
	// 6.5 -> 7, -6.5 -> -7.
	MidpointAwayFromZero

	// MidpointTowardZero breaks an exact half toward zero:
	// 6.5 -> 6, -6.5 -> -6.
	MidpointTowardZero

	// ToZero always rounds toward zero: 6.8 -> 6, -6.8 -> -6.
	ToZero

	// AwayFromZero always rounds away from zero: 6.2 -> 7, -6.2 -> -7.
	AwayFromZero

	// ToNegativeInfinity always rounds down (floor): 6.8 -> 6, -6.2 -> -7.
	ToNegativeInfinity

	// ToPositiveInfinity always rounds up (ceiling): 6.2 -> 7, -6.8 -> -6.
	ToPositiveInfinity
)

// DefaultRoundingStrategy is used wherever an operation rounds without an
// explicit strategy.
const DefaultRoundingStrategy = MidpointNearestEven

// Round rounds d to the given number of fractional digits using the
// strategy. It is a pure function and never fails: any finite decimal is
// roundable, and asking for more places than the value carries is a no-op.
// Unrecognized strategy values round like DefaultRoundingStrategy.
func (s RoundingStrategy) Round(d decimal.Decimal, places int32) decimal.Decimal {
	switch s {
	case MidpointAwayFromZero:
		return d.Round(places)
	case MidpointTowardZero:
		return roundHalfTowardZero(d, places)
	case ToZero:
		return d.RoundDown(places)
	case AwayFromZero:
		return d.RoundUp(places)
	case ToNegativeInfinity:
		return d.RoundFloor(places)
	case ToPositiveInfinity:
		return d.RoundCeil(places)
	default:
		return d.RoundBank(places)
	}
}

// String implements fmt.Stringer.
func (s RoundingStrategy) String() string {
	switch s {
	case MidpointNearestEven:
		return "MidpointNearestEven"
	case MidpointAwayFromZero:
		return "MidpointAwayFromZero"
	case MidpointTowardZero:
		return "MidpointTowardZero"
	case ToZero:
		return "ToZero"
	case AwayFromZero:
		return "AwayFromZero"
	case ToNegativeInfinity:
		return "ToNegativeInfinity"
	case ToPositiveInfinity:
		return "ToPositiveInfinity"
	default:
		return "RoundingStrategy(unknown)"
	}
}

var two = decimal.NewFromInt(2)

// roundQuotient returns n/d rounded to places fractional digits under the
// strategy, using exact integer arithmetic throughout. Division is the one
// operation where a guard-digit approach can mis-round values just past a
// midpoint, so ties are detected on the exact remainder instead. d must be
// non-zero.
func roundQuotient(n, d decimal.Decimal, places int32, strategy RoundingStrategy) decimal.Decimal {
	negative := n.Sign()*d.Sign() < 0

	// |n| * 10^places / |d| as exact integer quotient and remainder.
	scaled := n.Abs().Shift(places)
	q, r := scaled.QuoRem(d.Abs(), 0)

	if !r.IsZero() && roundQuotientUp(q, r, d.Abs(), negative, strategy) {
		q = q.Add(decimal.New(1, 0))
	}
	if negative {
		q = q.Neg()
	}
	return q.Shift(-places)
}

// roundQuotientUp decides whether the truncated quotient magnitude q must be
// incremented, given the non-zero remainder r of |n*10^places| / |d|.
func roundQuotientUp(q, r, d decimal.Decimal, negative bool, strategy RoundingStrategy) bool {
	switch strategy {
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToNegativeInfinity:
		return negative
	case ToPositiveInfinity:
		return !negative
	}
	switch cmp := r.Mul(two).Cmp(d); {
	case cmp < 0:
		return false
	case cmp > 0:
		return true
	}
	// Exact midpoint.
	switch strategy {
	case MidpointAwayFromZero:
		return true
	case MidpointTowardZero:
		return false
	default: // MidpointNearestEven
		return !q.Mod(two).IsZero()
	}
}

// roundHalfTowardZero rounds to nearest with exact halves truncated. The
// decimal library has no primitive for this tie rule, so it is composed
// from exact operations: truncate, then step away from zero only when the
// discarded remainder strictly exceeds half a unit at the target precision.
func roundHalfTowardZero(d decimal.Decimal, places int32) decimal.Decimal {
	truncated := d.Truncate(places)
	remainder := d.Sub(truncated).Abs()
	half := decimal.New(5, -places-1)
	if remainder.Cmp(half) <= 0 {
		return truncated
	}
	step := decimal.New(1, -places)
	if d.Sign() < 0 {
		return truncated.Sub(step)
	}
	return truncated.Add(step)
}
