// Package pricing renders subscription plan prices for display: money
// amounts in minor units, billing-interval phrases, and usage-based tier
// breakdowns.
package pricing

import (
	"fmt"
	"strings"

	"caseflow-be/internal/entity"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"IDR": "Rp",
}

// FormatMoney renders an amount in minor units, e.g. 1050 USD -> "$10.50".
// Unknown currencies fall back to the ISO code as a prefix.
func FormatMoney(amount int64, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}
	negative := ""
	if amount < 0 {
		negative = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s%d.%02d", negative, symbol, amount/100, amount%100)
}

// IntervalPhrase renders a billing cadence: (1, "month") -> "per month",
// (3, "month") -> "every 3 months".
func IntervalPhrase(count int, unit string) string {
	if count <= 1 {
		return "per " + unit
	}
	return fmt.Sprintf("every %d %s", count, Pluralize(unit, count))
}

// Pluralize naively pluralizes a unit noun for counts other than one. Good
// enough for the fixed billing vocabulary (day, week, month, year, and meter
// names like "case" or "party").
func Pluralize(noun string, count int) string {
	if count == 1 || noun == "" {
		return noun
	}
	switch {
	case strings.HasSuffix(noun, "s"), strings.HasSuffix(noun, "x"), strings.HasSuffix(noun, "ch"), strings.HasSuffix(noun, "sh"):
		return noun + "es"
	case strings.HasSuffix(noun, "y") && !strings.HasSuffix(noun, "ay") && !strings.HasSuffix(noun, "ey") && !strings.HasSuffix(noun, "oy"):
		return noun[:len(noun)-1] + "ies"
	default:
		return noun + "s"
	}
}

// PriceLine renders the headline price for a plan. Flat plans read
// "$29.00 / per month"; usage-based plans read "$0.50 / case".
func PriceLine(plan *entity.SubscriptionPlan) string {
	if plan.PriceType == entity.PriceTypeFlatRate {
		return fmt.Sprintf("%s / %s", FormatMoney(plan.Price, plan.Currency), IntervalPhrase(plan.IntervalCount, plan.IntervalUnit))
	}
	meter := plan.MeterName
	if meter == "" {
		meter = "unit"
	}
	return fmt.Sprintf("%s / %s", FormatMoney(plan.Price, plan.Currency), meter)
}

// TierLines renders one line per usage tier, e.g.
//
//	First 1 - 1000 cases → $0.10 / case + $5.00
//	Next 1001 - 5000 cases → $0.08 / case
//
// Tiers describe bands by their upper bound; the lower bound of each band is
// one past the previous band's upper bound.
func TierLines(plan *entity.SubscriptionPlan) []string {
	if len(plan.PriceTiers) == 0 {
		return nil
	}

	meter := plan.MeterName
	if meter == "" {
		meter = "unit"
	}

	lines := make([]string, 0, len(plan.PriceTiers))
	start := int64(1)
	for i, tier := range plan.PriceTiers {
		phrase := "Next"
		if i == 0 {
			phrase = "First"
		}

		// A tier with no upper bound (until_unit <= 0) is the open-ended
		// final band.
		bound := fmt.Sprintf("%d - %d", start, tier.UntilUnit)
		if tier.UntilUnit <= 0 {
			bound = fmt.Sprintf("%d+", start)
		}

		line := fmt.Sprintf("%s %s %s → %s / %s",
			phrase, bound, Pluralize(meter, 2),
			FormatMoney(tier.PerUnit, plan.Currency), meter)
		if tier.FlatFee > 0 {
			line += " + " + FormatMoney(tier.FlatFee, plan.Currency)
		}

		lines = append(lines, line)
		start = tier.UntilUnit + 1
	}
	return lines
}

// TrialPhrase renders the free-trial length, or "" when the plan has none.
func TrialPhrase(plan *entity.SubscriptionPlan) string {
	if plan.TrialIntervalCount <= 0 || plan.TrialIntervalUnit == "" {
		return ""
	}
	return fmt.Sprintf("%d %s trial", plan.TrialIntervalCount, Pluralize(plan.TrialIntervalUnit, plan.TrialIntervalCount))
}
