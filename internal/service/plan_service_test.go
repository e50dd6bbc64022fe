package service

import (
	"context"
	"testing"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlanRepo keeps plan versions in a slice and answers FindOne/FindAll by
// replaying the specifications it understands (slug and current filters).
type fakePlanRepo struct {
	plans []*entity.SubscriptionPlan
}

func (r *fakePlanRepo) match(p *entity.SubscriptionPlan, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySlug:
			if p.Slug != s.Slug {
				return false
			}
		case specification.CurrentOnly:
			if !p.IsCurrent {
				return false
			}
		case specification.ActiveOnly:
			if !p.IsActive {
				return false
			}
		}
	}
	return true
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.SubscriptionPlan) error {
	r.plans = append(r.plans, plan)
	return nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.SubscriptionPlan) error {
	for i, p := range r.plans {
		if p.Id == plan.Id {
			r.plans[i] = plan
		}
	}
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	for _, p := range r.plans {
		if r.match(p, specs) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	var out []*entity.SubscriptionPlan
	for _, p := range r.plans {
		if r.match(p, specs) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func newPlanFixture(slug string, price int64) *entity.SubscriptionPlan {
	return &entity.SubscriptionPlan{
		Id:            uuid.New(),
		Name:          "Professional",
		Slug:          slug,
		Version:       1,
		IsCurrent:     true,
		IsActive:      true,
		PriceType:     entity.PriceTypeFlatRate,
		Price:         price,
		Currency:      "USD",
		IntervalCount: 1,
		IntervalUnit:  "month",
		CreatedAt:     time.Now(),
	}
}

func newTestPlanService() (IPlanService, *fakePlanRepo, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	repo := &fakePlanRepo{}
	uow.plans = repo
	return NewPlanService(&fakeUowFactory{uow: uow}), repo, uow
}

func TestPlanGetCurrentSkipsArchivedAndOldVersions(t *testing.T) {
	svc, repo, _ := newTestPlanService()

	repo.plans = append(repo.plans, newPlanFixture("professional", 4900))
	old := newPlanFixture("professional", 3900)
	old.IsCurrent = false
	repo.plans = append(repo.plans, old)
	archived := newPlanFixture("legacy", 1900)
	archived.IsActive = false
	repo.plans = append(repo.plans, archived)

	plans, err := svc.GetCurrent(context.Background())

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "professional", plans[0].Slug)
	assert.Equal(t, "$49.00 / per month", plans[0].PriceLine)
}

func TestPlanCreateRejectsDuplicateSlug(t *testing.T) {
	svc, repo, _ := newTestPlanService()
	repo.plans = append(repo.plans, newPlanFixture("professional", 4900))

	_, err := svc.Create(context.Background(), &dto.CreatePlanRequest{
		Name: "Professional", Slug: "professional",
		PriceType: string(entity.PriceTypeFlatRate), Price: 5900, Currency: "USD",
		IntervalCount: 1, IntervalUnit: "month",
	})

	assert.Error(t, err)
	assert.Len(t, repo.plans, 1)
}

func TestPlanCreateStartsAtVersionOne(t *testing.T) {
	svc, repo, _ := newTestPlanService()

	plan, err := svc.Create(context.Background(), &dto.CreatePlanRequest{
		Name: "Starter", Slug: "starter",
		PriceType: string(entity.PriceTypeFlatRate), Price: 0, Currency: "USD",
		IntervalCount: 1, IntervalUnit: "month",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, plan.Version)
	assert.True(t, plan.IsCurrent)
	assert.True(t, plan.IsActive)
	require.Len(t, repo.plans, 1)
}

func TestPlanUpdateAppendsVersionAndFlipsCurrent(t *testing.T) {
	svc, repo, uow := newTestPlanService()
	repo.plans = append(repo.plans, newPlanFixture("professional", 4900))

	updated, err := svc.Update(context.Background(), "professional", &dto.UpdatePlanRequest{
		CreatePlanRequest: dto.CreatePlanRequest{
			Name: "Professional", Slug: "professional",
			PriceType: string(entity.PriceTypeFlatRate), Price: 5900, Currency: "USD",
			IntervalCount: 1, IntervalUnit: "month",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.True(t, updated.IsCurrent)
	assert.Equal(t, "$59.00 / per month", updated.PriceLine)
	assert.Equal(t, 1, uow.commits)
	assert.Equal(t, 0, uow.rollbacks)

	require.Len(t, repo.plans, 2)
	var currents int
	for _, p := range repo.plans {
		if p.IsCurrent {
			currents++
		}
	}
	assert.Equal(t, 1, currents, "exactly one current version per slug")
}

func TestPlanUpdateMissingSlug(t *testing.T) {
	svc, _, uow := newTestPlanService()

	_, err := svc.Update(context.Background(), "nope", &dto.UpdatePlanRequest{})

	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Equal(t, 0, uow.commits)
}

func TestPlanHistory(t *testing.T) {
	svc, repo, _ := newTestPlanService()

	v1 := newPlanFixture("professional", 3900)
	v1.IsCurrent = false
	repo.plans = append(repo.plans, v1)
	v2 := newPlanFixture("professional", 4900)
	v2.Version = 2
	repo.plans = append(repo.plans, v2)

	history, err := svc.History(context.Background(), "professional")

	require.NoError(t, err)
	assert.Equal(t, "professional", history.Slug)
	assert.Len(t, history.Versions, 2)

	_, err = svc.History(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPlanArchive(t *testing.T) {
	svc, repo, _ := newTestPlanService()
	repo.plans = append(repo.plans, newPlanFixture("legacy", 1900))

	require.NoError(t, svc.Archive(context.Background(), "legacy"))
	assert.False(t, repo.plans[0].IsActive)

	assert.ErrorIs(t, svc.Archive(context.Background(), "missing"), ErrPlanNotFound)
}
