package dto

import (
	"time"

	"github.com/google/uuid"
)

type CaseListItemResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CaseNumber   *string   `json:"case_number,omitempty"`
	Type         string    `json:"type"`
	Jurisdiction string    `json:"jurisdiction"`
	Status       string    `json:"status"`
	PartyCount   int       `json:"party_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type CasePartyResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Address  string    `json:"address,omitempty"`
}

type CaseDeadlineResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	Description string    `json:"description,omitempty"`
}

type CaseDocumentResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	ReceivedDate *string   `json:"received_date,omitempty"`
	DueDate      *string   `json:"due_date,omitempty"`
}

type ShowCaseResponse struct {
	Id           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	CaseNumber   *string                `json:"case_number,omitempty"`
	Type         string                 `json:"type"`
	Jurisdiction string                 `json:"jurisdiction"`
	Venue        string                 `json:"venue"`
	Description  string                 `json:"description"`
	Status       string                 `json:"status"`
	Parties      []CasePartyResponse    `json:"parties"`
	Deadlines    []CaseDeadlineResponse `json:"deadlines"`
	Documents    []CaseDocumentResponse `json:"documents"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    *time.Time             `json:"updated_at"`
}
