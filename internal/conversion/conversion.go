// Package conversion holds the fixed coin/rupee exchange arithmetic.
package conversion

import "github.com/shopspring/decimal"

// CoinsPerRupee is the platform-wide fixed rate: 20 coins = 1 rupee.
const CoinsPerRupee = 20

var coinsPerRupee = decimal.NewFromInt(CoinsPerRupee)

// CoinsToRupees converts a coin amount to rupees. Negative input is clamped
// to zero.
func CoinsToRupees(coins decimal.Decimal) decimal.Decimal {
	return clamp(coins).DivRound(coinsPerRupee, 2)
}

// RupeesToCoins converts a rupee amount to coins. Negative input is clamped
// to zero.
func RupeesToCoins(rupees decimal.Decimal) decimal.Decimal {
	return clamp(rupees).Mul(coinsPerRupee)
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
