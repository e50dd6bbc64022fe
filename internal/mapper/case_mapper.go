package mapper

import (
	"encoding/json"
	"time"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.LegalCase) *entity.LegalCase {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var metadata map[string]interface{}
	if len(c.Metadata) > 0 {
		// Metadata is write-once JSON from the wizard; a decode failure just
		// yields an empty map rather than poisoning a read.
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.LegalCase{
		Id:           c.Id,
		UserId:       c.UserId,
		Name:         c.Name,
		CaseNumber:   c.CaseNumber,
		Type:         c.Type,
		Jurisdiction: c.Jurisdiction,
		Venue:        c.Venue,
		Description:  c.Description,
		Status:       c.Status,
		Metadata:     metadata,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *CaseMapper) ToModel(c *entity.LegalCase) *model.LegalCase {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	var metadata datatypes.JSON
	if c.Metadata != nil {
		if raw, err := json.Marshal(c.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.LegalCase{
		Id:           c.Id,
		UserId:       c.UserId,
		Name:         c.Name,
		CaseNumber:   c.CaseNumber,
		Type:         c.Type,
		Jurisdiction: c.Jurisdiction,
		Venue:        c.Venue,
		Description:  c.Description,
		Status:       c.Status,
		Metadata:     metadata,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *CaseMapper) ToEntities(cases []*model.LegalCase) []*entity.LegalCase {
	entities := make([]*entity.LegalCase, len(cases))
	for i, c := range cases {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CaseMapper) PartyToEntity(p *model.CaseParty) *entity.CaseParty {
	if p == nil {
		return nil
	}
	return &entity.CaseParty{
		Id:        p.Id,
		CaseId:    p.CaseId,
		Name:      p.Name,
		Type:      p.Type,
		Category:  p.Category,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}

func (m *CaseMapper) PartyToModel(p *entity.CaseParty) *model.CaseParty {
	if p == nil {
		return nil
	}
	return &model.CaseParty{
		Id:        p.Id,
		CaseId:    p.CaseId,
		Name:      p.Name,
		Type:      p.Type,
		Category:  p.Category,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}

func (m *CaseMapper) PartiesToEntities(parties []*model.CaseParty) []entity.CaseParty {
	out := make([]entity.CaseParty, len(parties))
	for i, p := range parties {
		out[i] = *m.PartyToEntity(p)
	}
	return out
}

func (m *CaseMapper) DeadlineToEntity(d *model.CaseDeadline) *entity.CaseDeadline {
	if d == nil {
		return nil
	}
	return &entity.CaseDeadline{
		Id:          d.Id,
		CaseId:      d.CaseId,
		Title:       d.Title,
		Date:        d.Date,
		Time:        d.Time,
		Type:        d.Type,
		Priority:    d.Priority,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *CaseMapper) DeadlineToModel(d *entity.CaseDeadline) *model.CaseDeadline {
	if d == nil {
		return nil
	}
	return &model.CaseDeadline{
		Id:          d.Id,
		CaseId:      d.CaseId,
		Title:       d.Title,
		Date:        d.Date,
		Time:        d.Time,
		Type:        d.Type,
		Priority:    d.Priority,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *CaseMapper) DeadlinesToEntities(deadlines []*model.CaseDeadline) []entity.CaseDeadline {
	out := make([]entity.CaseDeadline, len(deadlines))
	for i, d := range deadlines {
		out[i] = *m.DeadlineToEntity(d)
	}
	return out
}

func (m *CaseMapper) DocumentToEntity(d *model.CaseDocument) *entity.CaseDocument {
	if d == nil {
		return nil
	}
	return &entity.CaseDocument{
		Id:           d.Id,
		CaseId:       d.CaseId,
		Title:        d.Title,
		Type:         d.Type,
		Category:     d.Category,
		Description:  d.Description,
		ReceivedDate: d.ReceivedDate,
		DueDate:      d.DueDate,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *CaseMapper) DocumentToModel(d *entity.CaseDocument) *model.CaseDocument {
	if d == nil {
		return nil
	}
	return &model.CaseDocument{
		Id:           d.Id,
		CaseId:       d.CaseId,
		Title:        d.Title,
		Type:         d.Type,
		Category:     d.Category,
		Description:  d.Description,
		ReceivedDate: d.ReceivedDate,
		DueDate:      d.DueDate,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *CaseMapper) DocumentsToEntities(docs []*model.CaseDocument) []entity.CaseDocument {
	out := make([]entity.CaseDocument, len(docs))
	for i, d := range docs {
		out[i] = *m.DocumentToEntity(d)
	}
	return out
}
