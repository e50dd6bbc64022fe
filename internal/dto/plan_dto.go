package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Version   int       `json:"version"`
	IsCurrent bool      `json:"is_current"`
	IsActive  bool      `json:"is_active"`

	PriceType string `json:"price_type"`
	Currency  string `json:"currency"`

	// Display strings rendered server-side so every client shows the same
	// price formatting. PriceLine is e.g. "$29.00 per month"; TierLines is
	// the per-band breakdown for tiered plans.
	PriceLine   string   `json:"price_line"`
	TierLines   []string `json:"tier_lines,omitempty"`
	TrialPhrase string   `json:"trial_phrase,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type CreatePlanRequest struct {
	Name      string `json:"name" validate:"required,min=3"`
	Slug      string `json:"slug" validate:"required,min=2"`
	PriceType string `json:"price_type" validate:"required,oneof=flat_rate usage_based_per_unit usage_based_tiered_volume usage_based_tiered_graduated"`
	Price     int64  `json:"price" validate:"min=0"`
	Currency  string `json:"currency" validate:"required,len=3"`
	MeterName string `json:"meter_name"`

	IntervalCount      int    `json:"interval_count" validate:"required,min=1"`
	IntervalUnit       string `json:"interval_unit" validate:"required,oneof=day week month year"`
	TrialIntervalCount int    `json:"trial_interval_count" validate:"min=0"`
	TrialIntervalUnit  string `json:"trial_interval_unit" validate:"omitempty,oneof=day week month year"`

	PriceTiers []PriceTierRequest `json:"price_tiers" validate:"dive"`
}

type PriceTierRequest struct {
	UntilUnit int64 `json:"until_unit"`
	PerUnit   int64 `json:"per_unit" validate:"min=0"`
	FlatFee   int64 `json:"flat_fee" validate:"min=0"`
}

// UpdatePlanRequest carries the same shape as create; applying it never
// mutates the existing row but appends a new version.
type UpdatePlanRequest struct {
	CreatePlanRequest
}

type PlanVersionResponse struct {
	Version   int       `json:"version"`
	IsCurrent bool      `json:"is_current"`
	PriceLine string    `json:"price_line"`
	CreatedAt time.Time `json:"created_at"`
}

type PlanHistoryResponse struct {
	Slug     string                `json:"slug"`
	Name     string                `json:"name"`
	Versions []PlanVersionResponse `json:"versions"`
}
