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

// Command basic walks through the money engine's core operations: value
// construction, currency-checked arithmetic, comparisons, percent change
// and rounding.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/tickwise/finmoney-go/money"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== money engine basic usage ===")
	fmt.Println()

	// Create currencies, or use the predefined ones
	usd, err := money.NewCurrency(1, "USD", "US Dollar", 2)
	if err != nil {
		return err
	}
	eur, err := money.NewCurrency(2, "EUR", "Euro", 2)
	if err != nil {
		return err
	}
	btc := money.BTC

	fmt.Println("1. Creating values")
	price := money.New(dec("10.50"), usd)
	tax := money.New(dec("1.05"), usd)
	btcAmount := money.New(dec("0.00123456"), btc)
	fmt.Printf("Price: %s\n", price)
	fmt.Printf("Tax: %s\n", tax)
	fmt.Printf("BTC amount: %s\n", btcAmount)
	fmt.Println()

	fmt.Println("2. Basic arithmetic")
	total, err := price.Add(tax)
	if err != nil {
		return err
	}
	fmt.Printf("Price + Tax = %s\n", total)

	doubled := price.MulDecimal(dec("2"))
	fmt.Printf("Price * 2 = %s\n", doubled)

	divided, err := price.DivDecimal(dec("3"), money.MidpointNearestEven)
	if err != nil {
		return err
	}
	fmt.Printf("Price / 3 = %s\n", divided)
	fmt.Println()

	fmt.Println("3. Currency safety")
	eurAmount := money.New(dec("85.50"), eur)
	if _, err := price.Add(eurAmount); err != nil {
		fmt.Printf("Error mixing currencies: %v\n", err)
	}
	fmt.Println()

	fmt.Println("4. Comparisons")
	price2 := money.New(dec("9.75"), usd)
	greater, err := price.GreaterThan(price2)
	if err != nil {
		return err
	}
	if greater {
		fmt.Printf("%s is greater than %s\n", price, price2)
	}

	minPrice, err := price.Min(price2)
	if err != nil {
		return err
	}
	maxPrice, err := price.Max(price2)
	if err != nil {
		return err
	}
	fmt.Printf("Min price: %s\n", minPrice)
	fmt.Printf("Max price: %s\n", maxPrice)
	fmt.Println()

	fmt.Println("5. Properties")
	negative := money.New(dec("-15.75"), usd)
	fmt.Printf("Amount: %s\n", negative)
	fmt.Printf("Is zero: %v\n", negative.IsZero())
	fmt.Printf("Is positive: %v\n", negative.IsPositive())
	fmt.Printf("Is negative: %v\n", negative.IsNegative())
	fmt.Printf("Has fraction: %v\n", negative.HasFraction())
	fmt.Printf("Absolute value: %s\n", negative.Abs())
	fmt.Println()

	fmt.Println("6. Percent change")
	initial := money.New(dec("100"), usd)
	current := money.New(dec("110"), usd)
	change, err := current.PercentChangeFrom(initial)
	if err != nil {
		return err
	}
	fmt.Printf("Change from %s to %s: %s%%\n", initial, current, change)
	fmt.Println()

	fmt.Println("7. Rounding")
	precise := money.New(dec("10.545"), usd)
	fmt.Printf("Original: %s %s\n", precise.Amount(), precise.CurrencyCode())
	fmt.Printf("Rounded (nearest even): %s\n",
		precise.RoundDPWithStrategy(2, money.MidpointNearestEven))
	fmt.Printf("Rounded (away from zero): %s\n",
		precise.RoundDPWithStrategy(2, money.MidpointAwayFromZero))

	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
