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

type CaseDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseDocumentRepository(db *gorm.DB) contract.CaseDocumentRepository {
	return &CaseDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseDocumentRepositoryImpl) Create(ctx context.Context, document *entity.CaseDocument) error {
	m := r.mapper.DocumentToModel(document)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *CaseDocumentRepositoryImpl) CreateBatch(ctx context.Context, documents []entity.CaseDocument) error {
	if len(documents) == 0 {
		return nil
	}
	models := make([]*model.CaseDocument, len(documents))
	for i := range documents {
		models[i] = r.mapper.DocumentToModel(&documents[i])
	}
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *CaseDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CaseDocument{}, id).Error
}

func (r *CaseDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDocument, error) {
	var models []*model.CaseDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CaseDocument, len(models))
	for i, m := range models {
		out[i] = r.mapper.DocumentToEntity(m)
	}
	return out, nil
}

func (r *CaseDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CaseDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
