package unitofwork

import (
	"context"

	"caseflow-be/internal/repository/contract"
)

// UnitOfWork gives services a consistent set of repositories. Between Begin
// and Commit/Rollback every accessor hands out repositories bound to the same
// transaction; outside a transaction they run against the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CaseRepository() contract.CaseRepository
	CasePartyRepository() contract.CasePartyRepository
	CaseDeadlineRepository() contract.CaseDeadlineRepository
	CaseDocumentRepository() contract.CaseDocumentRepository
	PlanRepository() contract.PlanRepository
	NotificationRepository() contract.NotificationRepository
}
