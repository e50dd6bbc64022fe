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

type CasePartyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCasePartyRepository(db *gorm.DB) contract.CasePartyRepository {
	return &CasePartyRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CasePartyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CasePartyRepositoryImpl) Create(ctx context.Context, party *entity.CaseParty) error {
	m := r.mapper.PartyToModel(party)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*party = *r.mapper.PartyToEntity(m)
	return nil
}

func (r *CasePartyRepositoryImpl) CreateBatch(ctx context.Context, parties []entity.CaseParty) error {
	if len(parties) == 0 {
		return nil
	}
	models := make([]*model.CaseParty, len(parties))
	for i := range parties {
		models[i] = r.mapper.PartyToModel(&parties[i])
	}
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *CasePartyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CaseParty{}, id).Error
}

func (r *CasePartyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseParty, error) {
	var models []*model.CaseParty
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CaseParty, len(models))
	for i, m := range models {
		out[i] = r.mapper.PartyToEntity(m)
	}
	return out, nil
}

func (r *CasePartyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CaseParty{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
