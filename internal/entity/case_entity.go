package entity

import (
	"time"

	"github.com/google/uuid"
)

// Case lifecycle statuses. A wizard submission always lands as pending.
const (
	CaseStatusPending  = "pending"
	CaseStatusActive   = "active"
	CaseStatusClosed   = "closed"
	CaseStatusArchived = "archived"
)

// LegalCase is the persisted case aggregate. It is created atomically with
// all of its children by the case writer and is immutable with respect to the
// wizard afterwards; edits go through the separate update path.
type LegalCase struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	CaseNumber   *string
	Type         string
	Jurisdiction string
	Venue        string
	Description  string
	Status       string
	Metadata     map[string]interface{}

	Parties   []CaseParty
	Deadlines []CaseDeadline
	Documents []CaseDocument

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

type CaseParty struct {
	Id       uuid.UUID
	CaseId   uuid.UUID
	Name     string
	Type     string
	Category string
	Email    string
	Phone    string
	Address  string

	CreatedAt time.Time
}

type CaseDeadline struct {
	Id          uuid.UUID
	CaseId      uuid.UUID
	Title       string
	Date        time.Time
	Time        string
	Type        string
	Priority    string
	Description string

	CreatedAt time.Time
}

type CaseDocument struct {
	Id           uuid.UUID
	CaseId       uuid.UUID
	Title        string
	Type         string
	Category     string
	Description  string
	ReceivedDate *time.Time
	DueDate      *time.Time
	Status       string

	CreatedAt time.Time
}
