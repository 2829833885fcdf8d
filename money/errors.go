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
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when dividing by a zero scalar or computing
// a percentage change from a zero base.
var ErrDivisionByZero = errors.New("money: division by zero")

// CurrencyMismatchError is returned by currency-checked operations when the
// two operands do not share a currency code.
type CurrencyMismatchError struct {
	Expected Currency // currency of the left-hand operand
	Actual   Currency // currency of the right-hand operand
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("money: currency mismatch: expected %s, got %s", e.Expected.Code(), e.Actual.Code())
}

// Is reports a match against any other CurrencyMismatchError so callers can
// use errors.Is with a zero-valued target.
func (e *CurrencyMismatchError) Is(target error) bool {
	_, ok := target.(*CurrencyMismatchError)
	return ok
}

// InvalidCurrencyError is returned when a currency code or name fails
// validation at construction time.
type InvalidCurrencyError struct {
	Reason string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("money: invalid currency: %s", e.Reason)
}

// InvalidTickSizeError is returned by tick-snapping operations when the tick
// size is zero or negative.
type InvalidTickSizeError struct {
	Reason string
}

func (e *InvalidTickSizeError) Error() string {
	return fmt.Sprintf("money: invalid tick size: %s", e.Reason)
}

// PrecisionOverflowError is returned when a requested number of decimal
// places is outside the supported range of 0 to MaxPrecision.
type PrecisionOverflowError struct {
	Precision int32
}

func (e *PrecisionOverflowError) Error() string {
	return fmt.Sprintf("money: precision %d out of range (must be 0..%d)", e.Precision, MaxPrecision)
}
