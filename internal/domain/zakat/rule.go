package zakat

import "github.com/shopspring/decimal"

// NisabGrams is the gold weight defining the nisab threshold.
const NisabGrams = 85

// rate is the zakat levy applied to income at or above nisab (2.5%).
var rate = decimal.NewFromFloat(0.025)

// Rule holds the zakat constants for the process lifetime. The gold price
// comes from configuration at startup; changing it requires a redeploy,
// never a runtime mutation.
type Rule struct {
	goldPricePerGram decimal.Decimal
	nisab            decimal.Decimal
}

func NewRule(goldPricePerGram decimal.Decimal) Rule {
	return Rule{
		goldPricePerGram: goldPricePerGram,
		nisab:            goldPricePerGram.Mul(decimal.NewFromInt(NisabGrams)),
	}
}

// GoldPricePerGram returns the configured gold price.
func (r Rule) GoldPricePerGram() decimal.Decimal {
	return r.goldPricePerGram
}

// Nisab returns the threshold: gold price per gram x 85 grams.
func (r Rule) Nisab() decimal.Decimal {
	return r.nisab
}

// Due returns the zakat owed on totalIncome: 2.5% when totalIncome is at or
// above nisab, zero otherwise. No proration and no rounding; callers that
// need currency-safe rounding round at presentation time.
func (r Rule) Due(totalIncome decimal.Decimal) decimal.Decimal {
	if totalIncome.GreaterThanOrEqual(r.nisab) {
		return totalIncome.Mul(rate)
	}
	return decimal.Zero
}

// Obligatory reports whether totalIncome is at or above nisab.
func (r Rule) Obligatory(totalIncome decimal.Decimal) bool {
	return totalIncome.GreaterThanOrEqual(r.nisab)
}
