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
	"testing"
)

func TestToTickNearest(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		tick   string
		want   string
	}{
		{"quarter tick", "10.567", "0.25", "10.50"},
		{"dime tick", "10.567", "0.10", "10.60"},
		{"cent tick", "10.567", "0.01", "10.57"},
		{"whole tick", "10.567", "1", "11"},
		{"odd tick", "10.567", "9", "9"},
		{"large tick", "10.567", "101", "0"},
		{"already on lattice", "10.50", "0.25", "10.50"},
		{"zero amount", "0", "0.25", "0"},
		{"negative amount", "-10.567", "0.25", "-10.50"},
		{"tiny power-of-ten tick", "10.123456789", "0.000000001", "10.123456789"},
		{"midpoint to even multiple down", "10.625", "0.25", "10.50"},
		{"midpoint to even multiple up", "10.875", "0.25", "11.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usd(t, tt.amount).ToTickNearest(dec(t, tt.tick))
			if err != nil {
				t.Fatalf("ToTickNearest(%s) error = %v", tt.tick, err)
			}
			if !got.Amount().Equal(dec(t, tt.want)) {
				t.Errorf("ToTickNearest(%s, %s) = %s, want %s", tt.amount, tt.tick, got.Amount(), tt.want)
			}
			if !got.Currency().Equal(USD) {
				t.Errorf("Currency() = %s, want USD", got.Currency())
			}
		})
	}
}

func TestToTickDirectional(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		tick     string
		wantDown string
		wantUp   string
	}{
		{"between quarters", "10.567", "0.25", "10.50", "10.75"},
		{"on lattice", "10.50", "0.25", "10.50", "10.50"},
		{"negative between quarters", "-10.567", "0.25", "-10.75", "-10.50"},
		{"midpoint never tie-breaks", "10.625", "0.25", "10.50", "10.75"},
		{"power-of-ten tick", "10.567", "0.10", "10.50", "10.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := usd(t, tt.amount)

			down, err := m.ToTickDown(dec(t, tt.tick))
			if err != nil {
				t.Fatalf("ToTickDown() error = %v", err)
			}
			if !down.Amount().Equal(dec(t, tt.wantDown)) {
				t.Errorf("ToTickDown(%s, %s) = %s, want %s", tt.amount, tt.tick, down.Amount(), tt.wantDown)
			}

			up, err := m.ToTickUp(dec(t, tt.tick))
			if err != nil {
				t.Fatalf("ToTickUp() error = %v", err)
			}
			if !up.Amount().Equal(dec(t, tt.wantUp)) {
				t.Errorf("ToTickUp(%s, %s) = %s, want %s", tt.amount, tt.tick, up.Amount(), tt.wantUp)
			}

			// down <= m <= up, and both bounds sit on the lattice.
			if le, _ := down.LessThanOrEqual(m); !le {
				t.Errorf("ToTickDown(%s) = %s > original", tt.amount, down.Amount())
			}
			if ge, _ := up.GreaterThanOrEqual(m); !ge {
				t.Errorf("ToTickUp(%s) = %s < original", tt.amount, up.Amount())
			}
			if !down.IsMultipleOfTick(dec(t, tt.tick)) {
				t.Errorf("ToTickDown result %s not on tick lattice", down.Amount())
			}
			if !up.IsMultipleOfTick(dec(t, tt.tick)) {
				t.Errorf("ToTickUp result %s not on tick lattice", up.Amount())
			}
		})
	}
}

func TestToTick_InvalidTick(t *testing.T) {
	m := usd(t, "10.50")

	var tickErr *InvalidTickSizeError
	if _, err := m.ToTickNearest(dec(t, "0")); !errors.As(err, &tickErr) {
		t.Errorf("ToTickNearest(0) error = %v, want *InvalidTickSizeError", err)
	}
	if _, err := m.ToTickNearest(dec(t, "-0.25")); !errors.As(err, &tickErr) {
		t.Errorf("ToTickNearest(-0.25) error = %v, want *InvalidTickSizeError", err)
	}
	if _, err := m.ToTickDown(dec(t, "0")); err == nil {
		t.Error("ToTickDown(0) error = nil, want *InvalidTickSizeError")
	}
	if _, err := m.ToTickUp(dec(t, "-1")); err == nil {
		t.Error("ToTickUp(-1) error = nil, want *InvalidTickSizeError")
	}
}

func TestToTickNearest_Idempotent(t *testing.T) {
	ticks := []string{"0.25", "0.10", "0.33", "9", "0.005"}
	amounts := []string{"10.567", "-3.1415", "0", "99.875", "0.001"}

	for _, tick := range ticks {
		for _, amount := range amounts {
			once, err := usd(t, amount).ToTickNearest(dec(t, tick))
			if err != nil {
				t.Fatalf("ToTickNearest(%s, %s) error = %v", amount, tick, err)
			}
			if !once.IsMultipleOfTick(dec(t, tick)) {
				t.Errorf("ToTickNearest(%s, %s) = %s is not a tick multiple", amount, tick, once.Amount())
			}

			twice, err := once.ToTickNearest(dec(t, tick))
			if err != nil {
				t.Fatalf("second ToTickNearest error = %v", err)
			}
			if !twice.Amount().Equal(once.Amount()) {
				t.Errorf("ToTickNearest not idempotent for %s tick %s: %s then %s",
					amount, tick, once.Amount(), twice.Amount())
			}
		}
	}
}

func TestIsMultipleOfTick(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		tick   string
		want   bool
	}{
		{"quarter multiple", "10.50", "0.25", true},
		{"half multiple", "10.50", "0.50", true},
		{"cent multiple", "10.50", "0.01", true},
		{"not quarter multiple", "10.567", "0.25", false},
		{"not dime multiple", "10.567", "0.10", false},
		{"not cent multiple", "10.567", "0.01", false},
		{"zero is multiple of anything", "0", "0.25", true},
		{"negative multiple", "-10.50", "0.25", true},
		{"negative non-multiple", "-10.567", "0.25", false},
		{"odd tick multiple", "0.99", "0.33", true},
		{"zero tick", "10.50", "0", false},
		{"negative tick", "10.50", "-0.25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usd(t, tt.amount).IsMultipleOfTick(dec(t, tt.tick))
			if got != tt.want {
				t.Errorf("IsMultipleOfTick(%s, %s) = %v, want %v", tt.amount, tt.tick, got, tt.want)
			}
		})
	}
}

func TestTickPowerOfTenPlaces(t *testing.T) {
	tests := []struct {
		tick   string
		wantDp int32
		wantOk bool
	}{
		{"0.001", 3, true},
		{"0.01", 2, true},
		{"0.1", 1, true},
		{"1", 0, true},
		{"0.25", 0, false},
		{"0.33", 0, false},
		{"5", 0, false},
		{"10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tick, func(t *testing.T) {
			dp, ok := TickPowerOfTenPlaces(dec(t, tt.tick))
			if ok != tt.wantOk || dp != tt.wantDp {
				t.Errorf("TickPowerOfTenPlaces(%s) = %d, %v; want %d, %v", tt.tick, dp, ok, tt.wantDp, tt.wantOk)
			}
		})
	}
}

func TestToTick_WithExplicitStrategy(t *testing.T) {
	m := usd(t, "10.625") // exactly between 10.50 and 10.75 on a 0.25 lattice

	tests := []struct {
		strategy RoundingStrategy
		want     string
	}{
		{MidpointNearestEven, "10.50"}, // 42.5 -> 42 (even)
		{MidpointAwayFromZero, "10.75"},
		{MidpointTowardZero, "10.50"},
		{ToNegativeInfinity, "10.50"},
		{ToPositiveInfinity, "10.75"},
		{ToZero, "10.50"},
		{AwayFromZero, "10.75"},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			got, err := m.ToTick(dec(t, "0.25"), tt.strategy)
			if err != nil {
				t.Fatalf("ToTick() error = %v", err)
			}
			if !got.Amount().Equal(dec(t, tt.want)) {
				t.Errorf("ToTick(10.625, 0.25, %s) = %s, want %s", tt.strategy, got.Amount(), tt.want)
			}
		})
	}
}
