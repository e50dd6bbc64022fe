package service

import (
	"context"
	"errors"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"
	"caseflow-be/internal/repository/unitofwork"
	"caseflow-be/pkg/wizard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDuplicateCaseNumber = errors.New("case number already exists")
	ErrCaseNotFound        = errors.New("case not found")
)

type ICaseService interface {
	// CreateCase is the wizard's atomic writer. Either the case and all of
	// its children land together or nothing is written.
	CreateCase(ctx context.Context, ownerId uuid.UUID, role wizard.Role, data *wizard.CaseData) (uuid.UUID, error)

	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.CaseListItemResponse, error)
	Show(ctx context.Context, userId uuid.UUID, caseId uuid.UUID) (*dto.ShowCaseResponse, error)
}

type caseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCaseService(uowFactory unitofwork.RepositoryFactory) ICaseService {
	return &caseService{uowFactory: uowFactory}
}

const isoDateLayout = "2006-01-02"

func (s *caseService) CreateCase(ctx context.Context, ownerId uuid.UUID, role wizard.Role, data *wizard.CaseData) (uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	legalCase := &entity.LegalCase{
		Id:           uuid.New(),
		UserId:       ownerId,
		Name:         data.Name,
		Type:         data.Type,
		Jurisdiction: data.Jurisdiction,
		Venue:        data.Venue,
		Description:  data.Description,
		Status:       entity.CaseStatusPending,
		Metadata: map[string]interface{}{
			"created_by_user_type": string(role),
		},
		CreatedAt: time.Now(),
	}
	if data.CaseNumber != "" {
		num := data.CaseNumber
		legalCase.CaseNumber = &num
	}

	parties := make([]entity.CaseParty, 0, len(data.Parties))
	for _, p := range data.Parties {
		parties = append(parties, entity.CaseParty{
			Id:        uuid.New(),
			CaseId:    legalCase.Id,
			Name:      p.Name,
			Type:      p.Type,
			Category:  p.Category,
			Email:     p.Email,
			Phone:     p.Phone,
			Address:   p.Address,
			CreatedAt: time.Now(),
		})
	}

	deadlines := make([]entity.CaseDeadline, 0, len(data.KeyDates))
	for _, d := range data.KeyDates {
		date, err := time.Parse(isoDateLayout, d.Date)
		if err != nil {
			return uuid.Nil, err
		}
		deadlines = append(deadlines, entity.CaseDeadline{
			Id:          uuid.New(),
			CaseId:      legalCase.Id,
			Title:       d.Title,
			Date:        date,
			Time:        d.Time,
			Type:        d.Type,
			Priority:    d.Priority,
			Description: d.Description,
			CreatedAt:   time.Now(),
		})
	}

	documents := make([]entity.CaseDocument, 0, len(data.Documents))
	for _, d := range data.Documents {
		doc := entity.CaseDocument{
			Id:          uuid.New(),
			CaseId:      legalCase.Id,
			Title:       d.Title,
			Type:        d.Type,
			Category:    d.Category,
			Description: d.Description,
			Status:      d.Status,
			CreatedAt:   time.Now(),
		}
		if t, err := time.Parse(isoDateLayout, d.ReceivedDate); err == nil && d.ReceivedDate != "" {
			doc.ReceivedDate = &t
		}
		if t, err := time.Parse(isoDateLayout, d.DueDate); err == nil && d.DueDate != "" {
			doc.DueDate = &t
		}
		documents = append(documents, doc)
	}

	if err := uow.Begin(ctx); err != nil {
		return uuid.Nil, err
	}
	defer uow.Rollback()

	if err := uow.CaseRepository().Create(ctx, legalCase); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, ErrDuplicateCaseNumber
		}
		return uuid.Nil, err
	}

	if len(parties) > 0 {
		if err := uow.CasePartyRepository().CreateBatch(ctx, parties); err != nil {
			return uuid.Nil, err
		}
	}
	if len(deadlines) > 0 {
		if err := uow.CaseDeadlineRepository().CreateBatch(ctx, deadlines); err != nil {
			return uuid.Nil, err
		}
	}
	if len(documents) > 0 {
		if err := uow.CaseDocumentRepository().CreateBatch(ctx, documents); err != nil {
			return uuid.Nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return uuid.Nil, err
	}

	return legalCase.Id, nil
}

func (s *caseService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.CaseListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cases, err := uow.CaseRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CaseListItemResponse, 0, len(cases))
	for _, c := range cases {
		partyCount, err := uow.CasePartyRepository().Count(ctx, specification.ByCaseID{CaseID: c.Id})
		if err != nil {
			return nil, err
		}
		res = append(res, &dto.CaseListItemResponse{
			Id:           c.Id,
			Name:         c.Name,
			CaseNumber:   c.CaseNumber,
			Type:         c.Type,
			Jurisdiction: c.Jurisdiction,
			Status:       c.Status,
			PartyCount:   int(partyCount),
			CreatedAt:    c.CreatedAt,
		})
	}
	return res, nil
}

func (s *caseService) Show(ctx context.Context, userId uuid.UUID, caseId uuid.UUID) (*dto.ShowCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	legalCase, err := uow.CaseRepository().FindOne(ctx,
		specification.ByID{ID: caseId},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if legalCase == nil {
		return nil, ErrCaseNotFound
	}

	parties, err := uow.CasePartyRepository().FindAll(ctx, specification.ByCaseID{CaseID: caseId})
	if err != nil {
		return nil, err
	}
	deadlines, err := uow.CaseDeadlineRepository().FindAll(ctx,
		specification.ByCaseID{CaseID: caseId},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		return nil, err
	}
	documents, err := uow.CaseDocumentRepository().FindAll(ctx, specification.ByCaseID{CaseID: caseId})
	if err != nil {
		return nil, err
	}

	res := &dto.ShowCaseResponse{
		Id:           legalCase.Id,
		Name:         legalCase.Name,
		CaseNumber:   legalCase.CaseNumber,
		Type:         legalCase.Type,
		Jurisdiction: legalCase.Jurisdiction,
		Venue:        legalCase.Venue,
		Description:  legalCase.Description,
		Status:       legalCase.Status,
		CreatedAt:    legalCase.CreatedAt,
		UpdatedAt:    legalCase.UpdatedAt,
	}

	for _, p := range parties {
		res.Parties = append(res.Parties, dto.CasePartyResponse{
			Id:       p.Id,
			Name:     p.Name,
			Type:     p.Type,
			Category: p.Category,
			Email:    p.Email,
			Phone:    p.Phone,
			Address:  p.Address,
		})
	}
	for _, d := range deadlines {
		res.Deadlines = append(res.Deadlines, dto.CaseDeadlineResponse{
			Id:          d.Id,
			Title:       d.Title,
			Date:        d.Date.Format(isoDateLayout),
			Time:        d.Time,
			Type:        d.Type,
			Priority:    d.Priority,
			Description: d.Description,
		})
	}
	for _, d := range documents {
		doc := dto.CaseDocumentResponse{
			Id:          d.Id,
			Title:       d.Title,
			Type:        d.Type,
			Category:    d.Category,
			Status:      d.Status,
			Description: d.Description,
		}
		if d.ReceivedDate != nil {
			v := d.ReceivedDate.Format(isoDateLayout)
			doc.ReceivedDate = &v
		}
		if d.DueDate != nil {
			v := d.DueDate.Format(isoDateLayout)
			doc.DueDate = &v
		}
		res.Documents = append(res.Documents, doc)
	}

	return res, nil
}
