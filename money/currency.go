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
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// MaxPrecision is the largest number of decimal places a currency may
	// declare. Ticks, rounding and rescaling all operate within this range.
	MaxPrecision int32 = 28

	// MaxCodeLen is the maximum length of a currency code.
	MaxCodeLen = 16

	// MaxNameLen is the maximum length of a currency display name.
	MaxNameLen = 52
)

// Currency identifies a tradable currency and the number of decimal places
// its smallest unit requires (2 for USD, 8 for BTC).
//
// The code is the currency's identity: two Currency values are the same
// currency iff their codes are equal. The id and name are descriptive
// metadata and never participate in currency checks, so constructing the
// same code with different display names cannot fragment identity. Use
// Equal for identity comparisons; the == operator compares metadata too.
//
// Currency is an immutable value and safe to copy and share across
// goroutines.
type Currency struct {
	id        int32
	code      string // 1..16 printable ASCII, uppercase
	name      string // optional, <=52 printable ASCII
	precision int32  // 0..28 decimal places
}

// Well-known currencies.
var (
	USD  = Currency{id: 1, code: "USD", name: "US Dollar", precision: 2}
	EUR  = Currency{id: 2, code: "EUR", name: "Euro", precision: 2}
	BTC  = Currency{id: 3, code: "BTC", name: "Bitcoin", precision: 8}
	ETH  = Currency{id: 4, code: "ETH", name: "Ethereum", precision: 18}
	GBP  = Currency{id: 5, code: "GBP", name: "Pound Sterling", precision: 2}
	JPY  = Currency{id: 6, code: "JPY", name: "Japanese Yen", precision: 0}
	USDT = Currency{id: 7, code: "USDT", name: "Tether", precision: 6}
)

// NewCurrency creates a validated Currency.
//
// The code must be 1 to 16 printable ASCII characters and is folded to
// uppercase. The name is optional ("" means none) and must be at most 52
// printable ASCII characters. The precision must be between 0 and
// MaxPrecision decimal places.
//
// Returns *InvalidCurrencyError for a bad code or name and
// *PrecisionOverflowError for an out-of-range precision.
func NewCurrency(id int32, code, name string, precision int32) (Currency, error) {
	if precision < 0 || precision > MaxPrecision {
		return Currency{}, &PrecisionOverflowError{Precision: precision}
	}
	normalized, err := normalizeCode(code)
	if err != nil {
		return Currency{}, err
	}
	if err := validateName(name); err != nil {
		return Currency{}, err
	}
	return Currency{id: id, code: normalized, name: name, precision: precision}, nil
}

// NewCurrencyFromValidated creates a Currency from a code and name that the
// caller has already normalized and validated, skipping string checks. Only
// the precision range is verified. Semantics are identical to NewCurrency;
// this exists for hot paths that construct currencies from pre-validated
// reference data.
func NewCurrencyFromValidated(id int32, code, name string, precision int32) (Currency, error) {
	if precision < 0 || precision > MaxPrecision {
		return Currency{}, &PrecisionOverflowError{Precision: precision}
	}
	return Currency{id: id, code: code, name: name, precision: precision}, nil
}

// Id returns the numeric identifier. Metadata only, not identity.
func (c Currency) Id() int32 {
	return c.id
}

// Code returns the uppercase currency code.
func (c Currency) Code() string {
	return c.code
}

// Name returns the display name, or "" if none was set. Metadata only.
func (c Currency) Name() string {
	return c.name
}

// Precision returns the number of decimal places of the currency's smallest
// unit.
func (c Currency) Precision() int32 {
	return c.precision
}

// Equal reports whether c and other are the same currency. Identity is the
// code alone; id and name are ignored.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code
}

// WithPrecision returns a copy of the currency with a different precision.
// Returns *PrecisionOverflowError if precision is outside 0..MaxPrecision.
func (c Currency) WithPrecision(precision int32) (Currency, error) {
	if precision < 0 || precision > MaxPrecision {
		return Currency{}, &PrecisionOverflowError{Precision: precision}
	}
	return Currency{id: c.id, code: c.code, name: c.name, precision: precision}, nil
}

// String implements fmt.Stringer and returns the currency code.
func (c Currency) String() string {
	return c.code
}

// currencyJson is the serialized form of a Currency. The code, decimal
// places and optional name round-trip; the id is carried as metadata.
type currencyJson struct {
	Id        int32  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name,omitempty"`
	Precision int32  `json:"precision"`
}

// MarshalJSON implements json.Marshaler.
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(currencyJson{
		Id:        c.id,
		Code:      c.code,
		Name:      c.name,
		Precision: c.precision,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The decoded currency is
// re-validated, so a malformed document cannot produce an invalid Currency.
func (c *Currency) UnmarshalJSON(data []byte) error {
	var raw currencyJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("money: unmarshal currency: %w", err)
	}
	parsed, err := NewCurrency(raw.Id, raw.Code, raw.Name, raw.Precision)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// normalizeCode validates a currency code and folds it to uppercase.
func normalizeCode(code string) (string, error) {
	if code == "" {
		return "", &InvalidCurrencyError{Reason: "code is empty"}
	}
	if len(code) > MaxCodeLen {
		return "", &InvalidCurrencyError{Reason: fmt.Sprintf("code %q exceeds %d characters", code, MaxCodeLen)}
	}
	for i := 0; i < len(code); i++ {
		b := code[i]
		if b <= ' ' || b > '~' {
			return "", &InvalidCurrencyError{Reason: fmt.Sprintf("code %q contains non-printable or non-ASCII character at index %d", code, i)}
		}
	}
	return strings.ToUpper(code), nil
}

// validateName validates an optional display name.
func validateName(name string) error {
	if name == "" {
		return nil
	}
	if len(name) > MaxNameLen {
		return &InvalidCurrencyError{Reason: fmt.Sprintf("name %q exceeds %d characters", name, MaxNameLen)}
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b < ' ' || b > '~' {
			return &InvalidCurrencyError{Reason: fmt.Sprintf("name %q contains non-printable or non-ASCII character at index %d", name, i)}
		}
	}
	return nil
}
