package contract

import (
	"context"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error
	Update(ctx context.Context, plan *entity.SubscriptionPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
