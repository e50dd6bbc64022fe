package wizard

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSubmitValidation means one or more steps failed re-validation at submit
// time. The per-step results are carried in SubmitResult.
var ErrSubmitValidation = errors.New("wizard: submission blocked by validation")

// CaseWriter turns accumulated wizard data into the persisted case aggregate.
// The write must be atomic: either the full case with all children exists
// afterwards, or nothing does. Duplicate case numbers and other constraint
// conflicts surface as typed errors so the controller can preserve state.
type CaseWriter interface {
	CreateCase(ctx context.Context, ownerID uuid.UUID, role Role, data *CaseData) (uuid.UUID, error)
}

// SubmitResult aggregates submit-time validation across all steps.
type SubmitResult struct {
	Steps  map[int]StepResult `json:"steps"`
	Errors []string           `json:"errors"`
}

// Controller drives the five ordered wizard steps. It is pure with respect to
// storage: every operation takes the current snapshot and returns a new one,
// so each call is fully re-entrant from a cold load of persisted state.
type Controller struct {
	catalog   *Catalog
	basicInfo *BasicInformation
	parties   *PartyManagement
	keyDates  *KeyDates
	documents *DocumentUpload
	review    *ReviewConfirm
	writer    CaseWriter
}

// NewController wires the five step validators against one option catalog.
// The writer is only exercised by Submit.
func NewController(catalog *Catalog, writer CaseWriter) *Controller {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &Controller{
		catalog:   catalog,
		basicInfo: NewBasicInformation(catalog),
		parties:   NewPartyManagement(catalog),
		keyDates:  NewKeyDates(catalog),
		documents: NewDocumentUpload(catalog),
		review:    NewReviewConfirm(catalog),
		writer:    writer,
	}
}

func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// ValidateStep runs the validator owning the given step. Unknown steps
// validate clean so a clamped pointer can never wedge the flow.
func (c *Controller) ValidateStep(step int, data *CaseData, role Role) StepResult {
	switch step {
	case StepBasicInfo:
		return c.basicInfo.Validate(data, role)
	case StepParties:
		return c.parties.Validate(data, role)
	case StepKeyDates:
		return c.keyDates.Validate(data, role)
	case StepDocuments:
		return c.documents.Validate(data, role)
	case StepReview:
		return c.review.Validate(data, role)
	default:
		return okResult()
	}
}

// Advance validates the current step and, on success, moves forward one step,
// capped at TotalSteps. A failing step returns its errors and leaves the
// snapshot unchanged. Advancing from the final step is the caller's cue to
// call Submit instead.
func (c *Controller) Advance(snap *Snapshot, role Role) (*Snapshot, StepResult) {
	res := c.ValidateStep(snap.CurrentStep, &snap.CaseData, role)
	if !res.Valid {
		return snap, res
	}
	out := snap.Clone()
	if out.CurrentStep < TotalSteps {
		out.CurrentStep++
	}
	out.touch()
	return out, res
}

// Retreat moves back one step, floored at step 1. Moving backward never
// validates.
func (c *Controller) Retreat(snap *Snapshot) *Snapshot {
	out := snap.Clone()
	if out.CurrentStep > StepBasicInfo {
		out.CurrentStep--
	}
	out.touch()
	return out
}

// JumpTo moves directly to a step the user has already visited, or forward
// when the current step validates. Out-of-range steps are ignored without
// error; hostile navigation input must never crash the flow.
func (c *Controller) JumpTo(snap *Snapshot, step int, role Role) *Snapshot {
	if step < StepBasicInfo || step > TotalSteps {
		return snap
	}
	if step > snap.CurrentStep {
		if res := c.ValidateStep(snap.CurrentStep, &snap.CaseData, role); !res.Valid {
			return snap
		}
	}
	out := snap.Clone()
	out.CurrentStep = step
	out.touch()
	return out
}

// Clear resets the wizard to step 1 with empty defaults. Deleting the
// persisted keys is the caller's job.
func (c *Controller) Clear() *Snapshot {
	return NewSnapshot()
}

// ValidateAll re-runs every step's validator. A user may have jumped
// backward and changed earlier data, so submission can never trust
// previously-passed steps.
func (c *Controller) ValidateAll(data *CaseData, role Role) SubmitResult {
	out := SubmitResult{Steps: make(map[int]StepResult, TotalSteps)}
	for step := StepBasicInfo; step <= TotalSteps; step++ {
		res := c.ValidateStep(step, data, role)
		out.Steps[step] = res
		if !res.Valid {
			for _, msg := range res.Errors {
				out.Errors = append(out.Errors, msg)
			}
		}
	}
	return out
}

// Submit re-validates all steps and, when clean, invokes the case writer
// exactly once. On success it returns the new case id together with a fresh
// snapshot for the caller to persist (clearing the session). On any failure
// the input snapshot is returned unchanged so the user's work survives.
func (c *Controller) Submit(ctx context.Context, snap *Snapshot, ownerID uuid.UUID, role Role) (uuid.UUID, *Snapshot, SubmitResult, error) {
	result := c.ValidateAll(&snap.CaseData, role)
	if len(result.Errors) > 0 {
		return uuid.Nil, snap, result, ErrSubmitValidation
	}

	caseID, err := c.writer.CreateCase(ctx, ownerID, role, &snap.CaseData)
	if err != nil {
		return uuid.Nil, snap, result, err
	}

	return caseID, NewSnapshot(), result, nil
}
