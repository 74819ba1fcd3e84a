package conversion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoinsToRupees(t *testing.T) {
	tests := []struct {
		name  string
		coins string
		want  string
	}{
		{"minimum withdrawal", "2000", "100"},
		{"one rupee", "20", "1"},
		{"fractional result", "30", "1.5"},
		{"single coin", "1", "0.05"},
		{"zero", "0", "0"},
		{"negative clamped", "-100", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoinsToRupees(decimal.RequireFromString(tt.coins))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"CoinsToRupees(%s) = %s, want %s", tt.coins, got, tt.want)
		})
	}
}

func TestRupeesToCoins(t *testing.T) {
	tests := []struct {
		name   string
		rupees string
		want   string
	}{
		{"hundred rupees", "100", "2000"},
		{"one rupee", "1", "20"},
		{"fractional rupees", "1.5", "30"},
		{"zero", "0", "0"},
		{"negative clamped", "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RupeesToCoins(decimal.RequireFromString(tt.rupees))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"RupeesToCoins(%s) = %s, want %s", tt.rupees, got, tt.want)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Multiples of the rate survive a full round trip unchanged.
	for _, coins := range []int64{20, 2000, 50000} {
		d := decimal.NewFromInt(coins)
		back := RupeesToCoins(CoinsToRupees(d))
		assert.True(t, back.Equal(d), "round trip of %d coins gave %s", coins, back)
	}
}
