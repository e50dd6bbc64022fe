package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserOwnedBy scopes a query to rows owned by one user. Every case read path
// applies this; cross-tenant reads are not a thing.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByCaseID scopes child tables (parties, deadlines, documents) to one case.
type ByCaseID struct {
	CaseID uuid.UUID
}

func (s ByCaseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_id = ?", s.CaseID)
}

// ByCaseNumber filters by the human-assigned docket number.
type ByCaseNumber struct {
	CaseNumber string
}

func (s ByCaseNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_number = ?", s.CaseNumber)
}

// ByStatus filters cases by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
