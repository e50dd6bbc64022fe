package implementation

import (
	"context"
	"errors"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/mapper"
	"caseflow-be/internal/model"
	"caseflow-be/internal/repository/contract"
	"caseflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseRepository(db *gorm.DB) contract.CaseRepository {
	return &CaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseRepositoryImpl) Create(ctx context.Context, legalCase *entity.LegalCase) error {
	m := r.mapper.ToModel(legalCase)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*legalCase = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseRepositoryImpl) Update(ctx context.Context, legalCase *entity.LegalCase) error {
	m := r.mapper.ToModel(legalCase)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*legalCase = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LegalCase{}, id).Error
}

func (r *CaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LegalCase, error) {
	var m model.LegalCase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LegalCase, error) {
	var models []*model.LegalCase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LegalCase{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
