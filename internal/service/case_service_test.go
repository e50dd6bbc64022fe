package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/contract"
	"caseflow-be/internal/repository/specification"
	"caseflow-be/internal/repository/unitofwork"
	"caseflow-be/pkg/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory repository fakes. Only the methods the case service touches do
// real work; the rest satisfy the contracts.

type fakeCaseRepo struct {
	created   []*entity.LegalCase
	createErr error
	findOne   *entity.LegalCase
	findAll   []*entity.LegalCase
}

func (r *fakeCaseRepo) Create(ctx context.Context, c *entity.LegalCase) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, c)
	return nil
}
func (r *fakeCaseRepo) Update(ctx context.Context, c *entity.LegalCase) error { return nil }
func (r *fakeCaseRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *fakeCaseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LegalCase, error) {
	return r.findOne, nil
}
func (r *fakeCaseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LegalCase, error) {
	return r.findAll, nil
}
func (r *fakeCaseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.findAll)), nil
}

type fakePartyRepo struct {
	batches  [][]entity.CaseParty
	batchErr error
}

func (r *fakePartyRepo) Create(ctx context.Context, p *entity.CaseParty) error { return nil }
func (r *fakePartyRepo) CreateBatch(ctx context.Context, parties []entity.CaseParty) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	r.batches = append(r.batches, parties)
	return nil
}
func (r *fakePartyRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakePartyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseParty, error) {
	return nil, nil
}
func (r *fakePartyRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeDeadlineRepo struct {
	batches [][]entity.CaseDeadline
	findAll []*entity.CaseDeadline
}

func (r *fakeDeadlineRepo) Create(ctx context.Context, d *entity.CaseDeadline) error { return nil }
func (r *fakeDeadlineRepo) CreateBatch(ctx context.Context, deadlines []entity.CaseDeadline) error {
	r.batches = append(r.batches, deadlines)
	return nil
}
func (r *fakeDeadlineRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeDeadlineRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDeadline, error) {
	return r.findAll, nil
}
func (r *fakeDeadlineRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeDocumentRepo struct {
	batches [][]entity.CaseDocument
}

func (r *fakeDocumentRepo) Create(ctx context.Context, d *entity.CaseDocument) error { return nil }
func (r *fakeDocumentRepo) CreateBatch(ctx context.Context, documents []entity.CaseDocument) error {
	r.batches = append(r.batches, documents)
	return nil
}
func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseDocument, error) {
	return nil, nil
}
func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

// fakeUnitOfWork tracks transaction boundaries the way the gorm-backed one
// behaves: Commit ends the transaction, so the deferred Rollback after a
// successful commit is a no-op.
type fakeUnitOfWork struct {
	cases         *fakeCaseRepo
	parties       *fakePartyRepo
	deadlines     *fakeDeadlineRepo
	documents     *fakeDocumentRepo
	plans         contract.PlanRepository
	users         contract.UserRepository
	notifications *fakeNotificationRepo

	active    bool
	commits   int
	rollbacks int
}

// fakeNotificationRepo is safe for concurrent use; the consumer pipeline
// writes from a background goroutine.
type fakeNotificationRepo struct {
	mu      sync.Mutex
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, n)
	return nil
}
func (r *fakeNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Notification{}, r.created...), nil
}
func (r *fakeNotificationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.created)), nil
}
func (r *fakeNotificationRepo) MarkAsRead(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	return nil
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		cases:         &fakeCaseRepo{},
		parties:       &fakePartyRepo{},
		deadlines:     &fakeDeadlineRepo{},
		documents:     &fakeDocumentRepo{},
		notifications: &fakeNotificationRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return errors.New("transaction already started")
	}
	u.active = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.active {
		return errors.New("no transaction to commit")
	}
	u.active = false
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.active {
		return errors.New("no transaction to rollback")
	}
	u.active = false
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository                 { return u.users }
func (u *fakeUnitOfWork) CaseRepository() contract.CaseRepository                 { return u.cases }
func (u *fakeUnitOfWork) CasePartyRepository() contract.CasePartyRepository       { return u.parties }
func (u *fakeUnitOfWork) CaseDeadlineRepository() contract.CaseDeadlineRepository { return u.deadlines }
func (u *fakeUnitOfWork) CaseDocumentRepository() contract.CaseDocumentRepository { return u.documents }
func (u *fakeUnitOfWork) PlanRepository() contract.PlanRepository                 { return u.plans }
func (u *fakeUnitOfWork) NotificationRepository() contract.NotificationRepository {
	return u.notifications
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func submittableCaseData() *wizard.CaseData {
	return &wizard.CaseData{
		Name:         "Smith v. Jones",
		Type:         "small_claims",
		Jurisdiction: "state",
		Venue:        "Travis County Small Claims Court",
		Description:  "Dispute over an unpaid invoice for home repairs.",
		Parties: []wizard.Party{
			{Id: "p1", Name: "John Smith", Type: "plaintiff", Category: "person"},
			{Id: "p2", Name: "Acme Repairs LLC", Type: "defendant", Category: "business"},
		},
		KeyDates: []wizard.KeyDate{
			{Id: "d1", Title: "Answer deadline", Date: "2026-10-15", Type: "filing_deadline", Priority: "critical"},
		},
		Documents: []wizard.DocumentPlaceholder{
			{Id: "doc1", Title: "Signed lease", Type: "evidence", Category: "evidence", Status: wizard.DocumentStatusPlaceholder},
		},
	}
}

func TestCreateCasePersistsFullAggregate(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewCaseService(&fakeUowFactory{uow: uow})
	owner := uuid.New()

	caseID, err := svc.CreateCase(context.Background(), owner, wizard.RoleProSe, submittableCaseData())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, caseID)
	assert.Equal(t, 1, uow.commits)
	assert.Equal(t, 0, uow.rollbacks)

	require.Len(t, uow.cases.created, 1)
	created := uow.cases.created[0]
	assert.Equal(t, caseID, created.Id)
	assert.Equal(t, owner, created.UserId)
	assert.Equal(t, entity.CaseStatusPending, created.Status)
	assert.Nil(t, created.CaseNumber, "empty case number stays NULL")

	require.Len(t, uow.parties.batches, 1)
	assert.Len(t, uow.parties.batches[0], 2)
	assert.Equal(t, caseID, uow.parties.batches[0][0].CaseId)

	require.Len(t, uow.deadlines.batches, 1)
	wantDate, _ := time.Parse("2006-01-02", "2026-10-15")
	assert.Equal(t, wantDate, uow.deadlines.batches[0][0].Date)

	require.Len(t, uow.documents.batches, 1)
	assert.Equal(t, wizard.DocumentStatusPlaceholder, uow.documents.batches[0][0].Status)
}

func TestCreateCaseRecordsCreatorUserType(t *testing.T) {
	for _, role := range []wizard.Role{wizard.RoleProSe, wizard.RoleLegalProfessional} {
		uow := newFakeUnitOfWork()
		svc := NewCaseService(&fakeUowFactory{uow: uow})

		data := submittableCaseData()
		if role == wizard.RoleLegalProfessional {
			data.CaseNumber = "2026-CV-00187"
		}

		_, err := svc.CreateCase(context.Background(), uuid.New(), role, data)

		require.NoError(t, err)
		require.Len(t, uow.cases.created, 1)
		created := uow.cases.created[0]
		require.NotNil(t, created.Metadata)
		assert.Equal(t, string(role), created.Metadata["created_by_user_type"])
	}
}

func TestCreateCaseStoresCaseNumberWhenPresent(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewCaseService(&fakeUowFactory{uow: uow})

	data := submittableCaseData()
	data.CaseNumber = "2026-CV-00187"

	_, err := svc.CreateCase(context.Background(), uuid.New(), wizard.RoleLegalProfessional, data)

	require.NoError(t, err)
	require.Len(t, uow.cases.created, 1)
	require.NotNil(t, uow.cases.created[0].CaseNumber)
	assert.Equal(t, "2026-CV-00187", *uow.cases.created[0].CaseNumber)
}

func TestCreateCaseRollsBackWhenChildInsertFails(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.parties.batchErr = errors.New("insert failed")
	svc := NewCaseService(&fakeUowFactory{uow: uow})

	_, err := svc.CreateCase(context.Background(), uuid.New(), wizard.RoleProSe, submittableCaseData())

	require.Error(t, err)
	assert.Equal(t, 0, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
	assert.Empty(t, uow.deadlines.batches, "later children never attempted")
}

func TestCreateCaseMapsDuplicateCaseNumber(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.cases.createErr = gorm.ErrDuplicatedKey
	svc := NewCaseService(&fakeUowFactory{uow: uow})

	_, err := svc.CreateCase(context.Background(), uuid.New(), wizard.RoleProSe, submittableCaseData())

	assert.ErrorIs(t, err, ErrDuplicateCaseNumber)
	assert.Equal(t, 0, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
}

func TestCreateCaseSkipsEmptyChildBatches(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewCaseService(&fakeUowFactory{uow: uow})

	data := submittableCaseData()
	data.KeyDates = nil
	data.Documents = nil

	_, err := svc.CreateCase(context.Background(), uuid.New(), wizard.RoleProSe, data)

	require.NoError(t, err)
	assert.Len(t, uow.parties.batches, 1)
	assert.Empty(t, uow.deadlines.batches)
	assert.Empty(t, uow.documents.batches)
}

func TestShowReturnsNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewCaseService(&fakeUowFactory{uow: uow})

	_, err := svc.Show(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
