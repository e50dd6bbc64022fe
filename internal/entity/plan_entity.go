package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceType distinguishes how a plan charges.
type PriceType string

const (
	PriceTypeFlatRate            PriceType = "flat_rate"
	PriceTypeUsageBasedPerUnit   PriceType = "usage_based_per_unit"
	PriceTypeUsageBasedVolume    PriceType = "usage_based_tiered_volume"
	PriceTypeUsageBasedGraduated PriceType = "usage_based_tiered_graduated"
)

// PriceTier is one band of a tiered usage-based price. Amounts are in the
// currency's minor unit (cents).
type PriceTier struct {
	UntilUnit int64 `json:"until_unit"`
	PerUnit   int64 `json:"per_unit"`
	FlatFee   int64 `json:"flat_fee"`
}

// SubscriptionPlan is one sellable tier of the product in one billing
// interval. Plans are versioned: editing a plan creates a new version row and
// the old one stays as history, so existing subscribers keep their terms.
type SubscriptionPlan struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	Version   int
	IsCurrent bool
	IsActive  bool

	PriceType PriceType
	Price     int64 // minor units; flat price or per-unit price
	Currency  string
	MeterName string // unit label for usage-based plans, e.g. "case"

	IntervalCount      int
	IntervalUnit       string // day | week | month | year
	TrialIntervalCount int
	TrialIntervalUnit  string

	PriceTiers []PriceTier

	CreatedAt time.Time
	UpdatedAt *time.Time
}
