// Package loyalty holds the cashback policy: which tier a customer is in for a given
// lifetime spend, and how many bonus points an order earns in that tier.
package loyalty

import (
	"github.com/shopspring/decimal"
	"github.com/ujwegh/keytoheart/internal/app/models"
)

type TierRule struct {
	Tier            models.Tier
	MinSpend        int64
	CashbackPercent decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Rules is ordered by MinSpend ascending.
var Rules = []TierRule{
	{Tier: models.Bronze, MinSpend: 0, CashbackPercent: decimal.RequireFromString("2.5")},
	{Tier: models.Silver, MinSpend: 10_000, CashbackPercent: decimal.RequireFromString("5")},
	{Tier: models.Gold, MinSpend: 20_000, CashbackPercent: decimal.RequireFromString("7.5")},
	{Tier: models.Platinum, MinSpend: 30_000, CashbackPercent: decimal.RequireFromString("10")},
	{Tier: models.Premium, MinSpend: 50_000, CashbackPercent: decimal.RequireFromString("15")},
}

// TierFor returns the highest tier whose threshold lifetimeSpend reaches.
func TierFor(lifetimeSpend int64) models.Tier {
	for i := len(Rules) - 1; i >= 0; i-- {
		if lifetimeSpend >= Rules[i].MinSpend {
			return Rules[i].Tier
		}
	}
	return models.Bronze
}

// CashbackPercentFor returns zero for an unknown tier.
func CashbackPercentFor(tier models.Tier) decimal.Decimal {
	for _, r := range Rules {
		if r.Tier == tier {
			return r.CashbackPercent
		}
	}
	return decimal.Zero
}

// AccrualAmount is floor(orderTotal * cashback% / 100).
func AccrualAmount(orderTotal int64, tier models.Tier) int64 {
	if orderTotal <= 0 {
		return 0
	}
	return decimal.NewFromInt(orderTotal).
		Mul(CashbackPercentFor(tier)).
		Div(hundred).
		Floor().
		IntPart()
}

// NextTier reports the tier above the one lifetimeSpend currently qualifies for and
// how much more has to be spent to reach it. ok is false at the top tier.
func NextTier(lifetimeSpend int64) (next models.Tier, remaining int64, ok bool) {
	for _, r := range Rules {
		if r.MinSpend > lifetimeSpend {
			return r.Tier, r.MinSpend - lifetimeSpend, true
		}
	}
	return "", 0, false
}
