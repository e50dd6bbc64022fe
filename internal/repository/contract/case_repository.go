package contract

import (
	"context"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CaseRepository interface {
	Create(ctx context.Context, legalCase *entity.LegalCase) error
	Update(ctx context.Context, legalCase *entity.LegalCase) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LegalCase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LegalCase, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CasePartyRepository interface {
	Create(ctx context.Context, party *entity.CaseParty) error
	CreateBatch(ctx context.Context, parties []entity.CaseParty) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseParty, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CaseDeadlineRepository interface {
	Create(ctx context.Context, deadline *entity.CaseDeadline) error
	CreateBatch(ctx context.Context, deadlines []entity.CaseDeadline) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDeadline, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CaseDocumentRepository interface {
	Create(ctx context.Context, document *entity.CaseDocument) error
	CreateBatch(ctx context.Context, documents []entity.CaseDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
