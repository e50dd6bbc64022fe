package mapper

import (
	"encoding/json"
	"time"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/model"

	"gorm.io/datatypes"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var tiers []entity.PriceTier
	if len(p.PriceTiers) > 0 {
		_ = json.Unmarshal(p.PriceTiers, &tiers)
	}

	return &entity.SubscriptionPlan{
		Id:                 p.Id,
		Name:               p.Name,
		Slug:               p.Slug,
		Version:            p.Version,
		IsCurrent:          p.IsCurrent,
		IsActive:           p.IsActive,
		PriceType:          entity.PriceType(p.PriceType),
		Price:              p.Price,
		Currency:           p.Currency,
		MeterName:          p.MeterName,
		IntervalCount:      p.IntervalCount,
		IntervalUnit:       p.IntervalUnit,
		TrialIntervalCount: p.TrialIntervalCount,
		TrialIntervalUnit:  p.TrialIntervalUnit,
		PriceTiers:         tiers,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	var tiers datatypes.JSON
	if p.PriceTiers != nil {
		if raw, err := json.Marshal(p.PriceTiers); err == nil {
			tiers = raw
		}
	}

	return &model.SubscriptionPlan{
		Id:                 p.Id,
		Name:               p.Name,
		Slug:               p.Slug,
		Version:            p.Version,
		IsCurrent:          p.IsCurrent,
		IsActive:           p.IsActive,
		PriceType:          string(p.PriceType),
		Price:              p.Price,
		Currency:           p.Currency,
		MeterName:          p.MeterName,
		IntervalCount:      p.IntervalCount,
		IntervalUnit:       p.IntervalUnit,
		TrialIntervalCount: p.TrialIntervalCount,
		TrialIntervalUnit:  p.TrialIntervalUnit,
		PriceTiers:         tiers,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *PlanMapper) ToEntities(plans []*model.SubscriptionPlan) []*entity.SubscriptionPlan {
	entities := make([]*entity.SubscriptionPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
