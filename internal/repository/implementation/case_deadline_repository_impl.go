package implementation

import (
	"context"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/mapper"
	"caseflow-be/internal/model"
	"caseflow-be/internal/repository/contract"
	"caseflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseDeadlineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseDeadlineRepository(db *gorm.DB) contract.CaseDeadlineRepository {
	return &CaseDeadlineRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseDeadlineRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseDeadlineRepositoryImpl) Create(ctx context.Context, deadline *entity.CaseDeadline) error {
	m := r.mapper.DeadlineToModel(deadline)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*deadline = *r.mapper.DeadlineToEntity(m)
	return nil
}

func (r *CaseDeadlineRepositoryImpl) CreateBatch(ctx context.Context, deadlines []entity.CaseDeadline) error {
	if len(deadlines) == 0 {
		return nil
	}
	models := make([]*model.CaseDeadline, len(deadlines))
	for i := range deadlines {
		models[i] = r.mapper.DeadlineToModel(&deadlines[i])
	}
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *CaseDeadlineRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CaseDeadline{}, id).Error
}

func (r *CaseDeadlineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDeadline, error) {
	var models []*model.CaseDeadline
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CaseDeadline, len(models))
	for i, m := range models {
		out[i] = r.mapper.DeadlineToEntity(m)
	}
	return out, nil
}

func (r *CaseDeadlineRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CaseDeadline{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
