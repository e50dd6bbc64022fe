package dto

import (
	"github.com/google/uuid"

	"caseflow-be/pkg/wizard"
)

type UpdateBasicInfoRequest struct {
	Name         string `json:"name"`
	CaseNumber   string `json:"case_number"`
	Type         string `json:"type"`
	Jurisdiction string `json:"jurisdiction"`
	Venue        string `json:"venue"`
	Description  string `json:"description"`
}

type AddPartyRequest struct {
	Id       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Category string `json:"category" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type AddKeyDateRequest struct {
	Id          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Type        string `json:"type" validate:"required"`
	Priority    string `json:"priority" validate:"required"`
	Description string `json:"description"`
}

type AddDocumentRequest struct {
	Id           string `json:"id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description"`
	ReceivedDate string `json:"received_date"`
	DueDate      string `json:"due_date"`
}

// CasePostProcessMessage is the in-process queue payload handed to the
// post-submit worker.
type CasePostProcessMessage struct {
	CaseId uuid.UUID `json:"case_id"`
	UserId uuid.UUID `json:"user_id"`
}

// JumpToStepRequest carries no validate tags. Out-of-range steps, zero
// included, are silently no-opped by the wizard controller rather than
// rejected at the request layer.
type JumpToStepRequest struct {
	Step int `json:"step"`
}

// StepFailureResponse is returned when a step mutation or navigation is
// rejected by validation. The snapshot is unchanged in that case.
type StepFailureResponse struct {
	Errors   map[string]string `json:"errors"`
	Warnings []string          `json:"warnings,omitempty"`
	State    wizard.State      `json:"state"`
}

type SubmitSuccessResponse struct {
	CaseId uuid.UUID    `json:"case_id"`
	State  wizard.State `json:"state"`
}

type SubmitFailureResponse struct {
	Errors map[int]wizard.StepResult `json:"errors"`
	State  wizard.State              `json:"state"`
}
