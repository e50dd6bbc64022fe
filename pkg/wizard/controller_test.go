package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records CreateCase calls so tests can assert the writer is
// invoked exactly once and only after validation passes.
type fakeWriter struct {
	calls  int
	lastID uuid.UUID
	err    error
}

func (w *fakeWriter) CreateCase(ctx context.Context, ownerID uuid.UUID, role Role, data *CaseData) (uuid.UUID, error) {
	w.calls++
	if w.err != nil {
		return uuid.Nil, w.err
	}
	w.lastID = uuid.New()
	return w.lastID, nil
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// completeProSeData returns case data that passes every step for a pro-se
// litigant.
func completeProSeData() CaseData {
	return CaseData{
		Name:         "Smith v. Jones",
		Type:         "small_claims",
		Jurisdiction: "state",
		Venue:        "Travis County Small Claims Court",
		Description:  "Dispute over an unpaid invoice for home repairs.",
		Parties: []Party{
			{Id: "p1", Name: "John Smith", Type: "plaintiff", Category: "person"},
			{Id: "p2", Name: "Acme Repairs LLC", Type: "defendant", Category: "business"},
		},
	}
}

func completeProSeSnapshot() *Snapshot {
	snap := NewSnapshot()
	snap.CaseData = completeProSeData()
	return snap
}

func TestAdvanceBlockedByInvalidStep(t *testing.T) {
	c := NewController(nil, nil)
	snap := NewSnapshot()

	next, res := c.Advance(snap, RoleProSe)

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "name")
	assert.Same(t, snap, next, "snapshot must be unchanged on failure")
	assert.Equal(t, StepBasicInfo, next.CurrentStep)
}

func TestAdvanceMovesForward(t *testing.T) {
	c := NewController(nil, nil)
	snap := completeProSeSnapshot()

	next, res := c.Advance(snap, RoleProSe)

	require.True(t, res.Valid)
	assert.Equal(t, StepParties, next.CurrentStep)
	assert.Equal(t, StepBasicInfo, snap.CurrentStep, "input snapshot must not be mutated")
}

func TestAdvanceCapsAtFinalStep(t *testing.T) {
	c := NewController(nil, nil)
	snap := completeProSeSnapshot()
	snap.CurrentStep = StepReview

	next, res := c.Advance(snap, RoleProSe)

	require.True(t, res.Valid)
	assert.Equal(t, StepReview, next.CurrentStep)
}

func TestRetreatFloorsAtFirstStep(t *testing.T) {
	c := NewController(nil, nil)

	snap := NewSnapshot()
	next := c.Retreat(snap)
	assert.Equal(t, StepBasicInfo, next.CurrentStep)

	snap.CurrentStep = StepKeyDates
	next = c.Retreat(snap)
	assert.Equal(t, StepParties, next.CurrentStep)
}

func TestRetreatNeverValidates(t *testing.T) {
	c := NewController(nil, nil)
	snap := NewSnapshot() // nothing filled in
	snap.CurrentStep = StepParties

	next := c.Retreat(snap)
	assert.Equal(t, StepBasicInfo, next.CurrentStep)
}

func TestJumpTo(t *testing.T) {
	c := NewController(nil, nil)

	t.Run("backward always allowed", func(t *testing.T) {
		snap := NewSnapshot() // invalid data
		snap.CurrentStep = StepDocuments
		next := c.JumpTo(snap, StepParties, RoleProSe)
		assert.Equal(t, StepParties, next.CurrentStep)
	})

	t.Run("forward requires current step valid", func(t *testing.T) {
		snap := NewSnapshot()
		next := c.JumpTo(snap, StepKeyDates, RoleProSe)
		assert.Equal(t, StepBasicInfo, next.CurrentStep)

		snap = completeProSeSnapshot()
		next = c.JumpTo(snap, StepKeyDates, RoleProSe)
		assert.Equal(t, StepKeyDates, next.CurrentStep)
	})

	t.Run("out of range is a silent no-op", func(t *testing.T) {
		snap := completeProSeSnapshot()
		snap.CurrentStep = StepKeyDates

		for _, step := range []int{0, -1, 7, 100} {
			next := c.JumpTo(snap, step, RoleProSe)
			assert.Equal(t, StepKeyDates, next.CurrentStep, "step %d", step)
		}
	})
}

func TestClearResetsToDefaults(t *testing.T) {
	c := NewController(nil, nil)

	snap := c.Clear()
	assert.Equal(t, StepBasicInfo, snap.CurrentStep)
	assert.Empty(t, snap.CaseData.Name)
	assert.Empty(t, snap.CaseData.Parties)
	assert.Empty(t, snap.CaseData.KeyDates)
	assert.Empty(t, snap.CaseData.Documents)
}

// A snapshot serialized and reloaded must drive the controller exactly like
// the original: operations only depend on snapshot contents.
func TestSnapshotRoundTrip(t *testing.T) {
	c := NewController(nil, nil)
	snap := completeProSeSnapshot()
	snap.CurrentStep = StepKeyDates
	snap.CaseData.KeyDates = []KeyDate{
		{Id: "d1", Title: "Hearing", Date: futureDate(30), Type: "hearing_date", Priority: "high"},
	}

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var reloaded Snapshot
	require.NoError(t, json.Unmarshal(raw, &reloaded))

	assert.Equal(t, snap.CurrentStep, reloaded.CurrentStep)
	assert.Equal(t, snap.CaseData, reloaded.CaseData)

	origState := c.State(snap, RoleProSe)
	reloadedState := c.State(&reloaded, RoleProSe)
	assert.Equal(t, origState, reloadedState)
}

func TestSubmitHappyPath(t *testing.T) {
	writer := &fakeWriter{}
	c := NewController(nil, writer)
	snap := completeProSeSnapshot()
	snap.CurrentStep = StepReview
	owner := uuid.New()

	caseID, next, result, err := c.Submit(context.Background(), snap, owner, RoleProSe)

	require.NoError(t, err)
	assert.Equal(t, writer.lastID, caseID)
	assert.Equal(t, 1, writer.calls)
	assert.Empty(t, result.Errors)
	assert.Equal(t, StepBasicInfo, next.CurrentStep, "success returns a fresh snapshot")
	assert.Empty(t, next.CaseData.Name)
}

func TestSubmitRequiresBothPartySides(t *testing.T) {
	writer := &fakeWriter{}
	c := NewController(nil, writer)

	snap := completeProSeSnapshot()
	snap.CaseData.Parties = []Party{
		{Id: "p1", Name: "John Smith", Type: "plaintiff", Category: "person"},
	}

	_, next, result, err := c.Submit(context.Background(), snap, uuid.New(), RoleProSe)

	assert.ErrorIs(t, err, ErrSubmitValidation)
	assert.Equal(t, 0, writer.calls, "writer must not run when validation fails")
	assert.Same(t, snap, next, "failed submit keeps the snapshot")
	assert.False(t, result.Steps[StepReview].Valid)
}

func TestSubmitRevalidatesEarlierSteps(t *testing.T) {
	// A user can jump back and blank out step-1 data after step 2 passed;
	// submission must catch it.
	writer := &fakeWriter{}
	c := NewController(nil, writer)

	snap := completeProSeSnapshot()
	snap.CurrentStep = StepReview
	snap.CaseData.Description = ""

	_, _, result, err := c.Submit(context.Background(), snap, uuid.New(), RoleProSe)

	assert.ErrorIs(t, err, ErrSubmitValidation)
	assert.Equal(t, 0, writer.calls)
	assert.False(t, result.Steps[StepBasicInfo].Valid)
}

func TestSubmitWriterFailureKeepsSnapshot(t *testing.T) {
	writer := &fakeWriter{err: errors.New("connection reset")}
	c := NewController(nil, writer)
	snap := completeProSeSnapshot()

	caseID, next, _, err := c.Submit(context.Background(), snap, uuid.New(), RoleProSe)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSubmitValidation)
	assert.Equal(t, uuid.Nil, caseID)
	assert.Same(t, snap, next, "user's work survives a writer failure")
	assert.Equal(t, "Smith v. Jones", next.CaseData.Name)
}

func TestProfessionalSubmitRequiresCaseNumber(t *testing.T) {
	writer := &fakeWriter{}
	c := NewController(nil, writer)

	snap := NewSnapshot()
	snap.CaseData = CaseData{
		Name:         "Acme Corp v. Widget Inc",
		Type:         "contract_dispute",
		Jurisdiction: "federal",
		Venue:        "U.S. District Court, N.D. Cal.",
		Description:  "Breach of a supply agreement for custom components.",
		Parties: []Party{
			{Id: "p1", Name: "Acme Corp", Type: "plaintiff", Category: "corporation"},
			{Id: "p2", Name: "Widget Inc", Type: "defendant", Category: "corporation"},
		},
	}

	_, _, result, err := c.Submit(context.Background(), snap, uuid.New(), RoleLegalProfessional)
	assert.ErrorIs(t, err, ErrSubmitValidation)
	assert.Contains(t, result.Steps[StepBasicInfo].Errors, "case_number")

	snap.CaseData.CaseNumber = "3:26-cv-01234"
	caseID, _, _, err := c.Submit(context.Background(), snap, uuid.New(), RoleLegalProfessional)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, caseID)
}

func TestStateReflectsSnapshot(t *testing.T) {
	c := NewController(nil, nil)
	snap := completeProSeSnapshot()
	snap.CurrentStep = StepParties

	state := c.State(snap, RoleProSe)

	assert.Equal(t, StepParties, state.CurrentStep)
	assert.Equal(t, TotalSteps, state.TotalSteps)
	require.Len(t, state.Steps, TotalSteps)
	assert.True(t, state.Steps[0].Completed)
	assert.True(t, state.Steps[1].Current)
	assert.True(t, state.IsComplete)
	assert.NotEmpty(t, state.Options.CaseTypes)

	// Role decides which catalogs come back.
	proState := c.State(snap, RoleLegalProfessional)
	assert.NotEqual(t, state.Options.CaseTypes, proState.Options.CaseTypes)
}
