package pricing

import (
	"testing"

	"caseflow-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		want     string
	}{
		{"whole dollars", 2900, "USD", "$29.00"},
		{"with cents", 1050, "USD", "$10.50"},
		{"sub-dollar", 50, "USD", "$0.50"},
		{"zero", 0, "USD", "$0.00"},
		{"negative", -995, "USD", "-$9.95"},
		{"euro", 1999, "EUR", "€19.99"},
		{"pound", 500, "GBP", "£5.00"},
		{"lowercase code", 2900, "usd", "$29.00"},
		{"unknown currency falls back to code", 2900, "CHF", "CHF 29.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency))
		})
	}
}

func TestIntervalPhrase(t *testing.T) {
	tests := []struct {
		count int
		unit  string
		want  string
	}{
		{1, "month", "per month"},
		{0, "month", "per month"},
		{1, "year", "per year"},
		{3, "month", "every 3 months"},
		{2, "week", "every 2 weeks"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IntervalPhrase(tt.count, tt.unit))
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		noun  string
		count int
		want  string
	}{
		{"month", 1, "month"},
		{"month", 2, "months"},
		{"case", 5, "cases"},
		{"party", 2, "parties"},
		{"day", 3, "days"},
		{"", 2, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Pluralize(tt.noun, tt.count))
	}
}

func TestPriceLine(t *testing.T) {
	flat := &entity.SubscriptionPlan{
		PriceType:     entity.PriceTypeFlatRate,
		Price:         4900,
		Currency:      "USD",
		IntervalCount: 1,
		IntervalUnit:  "month",
	}
	assert.Equal(t, "$49.00 / per month", PriceLine(flat))

	flat.IntervalCount = 3
	assert.Equal(t, "$49.00 / every 3 months", PriceLine(flat))

	metered := &entity.SubscriptionPlan{
		PriceType: entity.PriceTypeUsageBasedPerUnit,
		Price:     50,
		Currency:  "USD",
		MeterName: "case",
	}
	assert.Equal(t, "$0.50 / case", PriceLine(metered))

	metered.MeterName = ""
	assert.Equal(t, "$0.50 / unit", PriceLine(metered))
}

func TestTierLines(t *testing.T) {
	plan := &entity.SubscriptionPlan{
		PriceType: entity.PriceTypeUsageBasedGraduated,
		Currency:  "USD",
		MeterName: "case",
		PriceTiers: []entity.PriceTier{
			{UntilUnit: 10, PerUnit: 900},
			{UntilUnit: 50, PerUnit: 700},
			{UntilUnit: -1, PerUnit: 500, FlatFee: 2500},
		},
	}

	assert.Equal(t, []string{
		"First 1 - 10 cases → $9.00 / case",
		"Next 11 - 50 cases → $7.00 / case",
		"Next 51+ cases → $5.00 / case + $25.00",
	}, TierLines(plan))
}

func TestTierLinesEmptyForFlatPlans(t *testing.T) {
	plan := &entity.SubscriptionPlan{PriceType: entity.PriceTypeFlatRate, Price: 2900, Currency: "USD"}
	assert.Nil(t, TierLines(plan))
}

func TestTrialPhrase(t *testing.T) {
	plan := &entity.SubscriptionPlan{TrialIntervalCount: 14, TrialIntervalUnit: "day"}
	assert.Equal(t, "14 days trial", TrialPhrase(plan))

	plan.TrialIntervalCount = 1
	assert.Equal(t, "1 day trial", TrialPhrase(plan))

	plan.TrialIntervalCount = 0
	assert.Equal(t, "", TrialPhrase(plan))
}
