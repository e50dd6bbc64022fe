package service

import (
	"context"
	"errors"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"
	"caseflow-be/internal/repository/unitofwork"
	"caseflow-be/pkg/pricing"

	"github.com/google/uuid"
)

var ErrPlanNotFound = errors.New("plan not found")

type IPlanService interface {
	// GetCurrent lists the live version of every active plan.
	GetCurrent(ctx context.Context) ([]*dto.PlanResponse, error)
	// History returns every version of one plan slug, newest first.
	History(ctx context.Context, slug string) (*dto.PlanHistoryResponse, error)
	Create(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	// Update appends a new version; existing subscribers keep the old terms.
	Update(ctx context.Context, slug string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	// Archive deactivates a plan; history stays queryable.
	Archive(ctx context.Context, slug string) error
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) IPlanService {
	return &planService{uowFactory: uowFactory}
}

func toPlanResponse(plan *entity.SubscriptionPlan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:          plan.Id,
		Name:        plan.Name,
		Slug:        plan.Slug,
		Version:     plan.Version,
		IsCurrent:   plan.IsCurrent,
		IsActive:    plan.IsActive,
		PriceType:   string(plan.PriceType),
		Currency:    plan.Currency,
		PriceLine:   pricing.PriceLine(plan),
		TierLines:   pricing.TierLines(plan),
		TrialPhrase: pricing.TrialPhrase(plan),
		CreatedAt:   plan.CreatedAt,
	}
}

func (s *planService) GetCurrent(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.CurrentOnly{},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		res = append(res, toPlanResponse(plan))
	}
	return res, nil
}

func (s *planService) History(ctx context.Context, slug string) (*dto.PlanHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	versions, err := uow.PlanRepository().FindAll(ctx,
		specification.BySlug{Slug: slug},
		specification.OrderBy{Field: "version", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, ErrPlanNotFound
	}

	res := &dto.PlanHistoryResponse{
		Slug: slug,
		Name: versions[0].Name,
	}
	for _, v := range versions {
		res.Versions = append(res.Versions, dto.PlanVersionResponse{
			Version:   v.Version,
			IsCurrent: v.IsCurrent,
			PriceLine: pricing.PriceLine(v),
			CreatedAt: v.CreatedAt,
		})
	}
	return res, nil
}

func planFromRequest(req *dto.CreatePlanRequest) *entity.SubscriptionPlan {
	plan := &entity.SubscriptionPlan{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		Version:   1,
		IsCurrent: true,
		IsActive:  true,

		PriceType: entity.PriceType(req.PriceType),
		Price:     req.Price,
		Currency:  req.Currency,
		MeterName: req.MeterName,

		IntervalCount:      req.IntervalCount,
		IntervalUnit:       req.IntervalUnit,
		TrialIntervalCount: req.TrialIntervalCount,
		TrialIntervalUnit:  req.TrialIntervalUnit,

		CreatedAt: time.Now(),
	}
	for _, t := range req.PriceTiers {
		plan.PriceTiers = append(plan.PriceTiers, entity.PriceTier{
			UntilUnit: t.UntilUnit,
			PerUnit:   t.PerUnit,
			FlatFee:   t.FlatFee,
		})
	}
	return plan
}

func (s *planService) Create(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PlanRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug}, specification.CurrentOnly{})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("plan slug already exists")
	}

	plan := planFromRequest(req)
	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *planService) Update(ctx context.Context, slug string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.PlanRepository().FindOne(ctx, specification.BySlug{Slug: slug}, specification.CurrentOnly{})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrPlanNotFound
	}

	// Version flip and insert happen in one transaction so there is never a
	// moment with zero or two current versions.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	current.IsCurrent = false
	if err := uow.PlanRepository().Update(ctx, current); err != nil {
		return nil, err
	}

	next := planFromRequest(&req.CreatePlanRequest)
	next.Slug = slug
	next.Version = current.Version + 1
	if err := uow.PlanRepository().Create(ctx, next); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toPlanResponse(next), nil
}

func (s *planService) Archive(ctx context.Context, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.PlanRepository().FindOne(ctx, specification.BySlug{Slug: slug}, specification.CurrentOnly{})
	if err != nil {
		return err
	}
	if current == nil {
		return ErrPlanNotFound
	}

	current.IsActive = false
	return uow.PlanRepository().Update(ctx, current)
}
