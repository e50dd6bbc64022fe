package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"caseflow-be/internal/dto"
	"caseflow-be/pkg/events"
	pktNats "caseflow-be/pkg/nats"
	"caseflow-be/pkg/wizard"

	"github.com/google/uuid"
)

type IWizardService interface {
	State(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, error)
	Advance(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, *wizard.StepResult, error)
	Retreat(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, error)
	JumpTo(ctx context.Context, userId uuid.UUID, role wizard.Role, step int) (*wizard.State, error)
	Clear(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, error)
	Submit(ctx context.Context, userId uuid.UUID, role wizard.Role) (uuid.UUID, *wizard.State, *wizard.SubmitResult, error)

	UpdateBasicInfo(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.UpdateBasicInfoRequest) (*wizard.State, error)
	AddParty(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.AddPartyRequest) (*wizard.State, *wizard.StepResult, error)
	RemoveParty(ctx context.Context, userId uuid.UUID, role wizard.Role, partyId string) (*wizard.State, error)
	AddKeyDate(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.AddKeyDateRequest) (*wizard.State, *wizard.StepResult, error)
	RemoveKeyDate(ctx context.Context, userId uuid.UUID, role wizard.Role, dateId string) (*wizard.State, error)
	AddDocument(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.AddDocumentRequest) (*wizard.State, *wizard.StepResult, error)
	RemoveDocument(ctx context.Context, userId uuid.UUID, role wizard.Role, documentId string) (*wizard.State, error)
}

type wizardService struct {
	controller       *wizard.Controller
	store            wizard.SnapshotStore
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewWizardService(controller *wizard.Controller, store wizard.SnapshotStore, publisherService IPublisherService, eventPublisher *pktNats.Publisher) IWizardService {
	return &wizardService{
		controller:       controller,
		store:            store,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// load returns the user's snapshot, starting a fresh one when nothing is
// persisted yet.
func (s *wizardService) load(ctx context.Context, userId uuid.UUID) (*wizard.Snapshot, error) {
	snap, found, err := s.store.Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	if !found {
		return wizard.NewSnapshot(), nil
	}
	return snap, nil
}

func (s *wizardService) save(ctx context.Context, userId uuid.UUID, snap *wizard.Snapshot, role wizard.Role) (*wizard.State, error) {
	if err := s.store.Put(ctx, userId, snap); err != nil {
		return nil, err
	}
	state := s.controller.State(snap, role)
	return &state, nil
}

func (s *wizardService) State(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	state := s.controller.State(snap, role)
	return &state, nil
}

func (s *wizardService) Advance(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, *wizard.StepResult, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	next, res := s.controller.Advance(snap, role)
	if !res.Valid {
		state := s.controller.State(snap, role)
		return &state, &res, nil
	}
	state, err := s.save(ctx, userId, next, role)
	return state, &res, err
}

func (s *wizardService) Retreat(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userId, s.controller.Retreat(snap), role)
}

func (s *wizardService) JumpTo(ctx context.Context, userId uuid.UUID, role wizard.Role, step int) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userId, s.controller.JumpTo(snap, step, role), role)
}

func (s *wizardService) Clear(ctx context.Context, userId uuid.UUID, role wizard.Role) (*wizard.State, error) {
	if err := s.store.Delete(ctx, userId); err != nil {
		return nil, err
	}
	state := s.controller.State(s.controller.Clear(), role)
	return &state, nil
}

func (s *wizardService) Submit(ctx context.Context, userId uuid.UUID, role wizard.Role) (uuid.UUID, *wizard.State, *wizard.SubmitResult, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}

	caseId, next, result, err := s.controller.Submit(ctx, snap, userId, role)
	if err != nil {
		// The snapshot is untouched on failure; the user's work survives.
		state := s.controller.State(snap, role)
		return uuid.Nil, &state, &result, err
	}

	if err := s.store.Delete(ctx, userId); err != nil {
		fmt.Printf("[WARN] Failed to clear wizard session for %s: %v\n", userId, err)
	}

	s.publishCaseCreated(ctx, caseId, userId, snap.CaseData.Name, role)

	state := s.controller.State(next, role)
	return caseId, &state, &result, nil
}

// publishCaseCreated fans the submission out to the event bus and the
// in-process worker pipeline. Neither failure rolls back the case; the write
// already committed.
func (s *wizardService) publishCaseCreated(ctx context.Context, caseId, userId uuid.UUID, caseName string, role wizard.Role) {
	if s.eventPublisher != nil {
		evt := events.NewCaseCreated(caseId, userId, caseName, string(role))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish CASE_CREATED event: %v\n", err)
		}
	}

	if s.publisherService != nil {
		msgPayload := dto.CasePostProcessMessage{CaseId: caseId, UserId: userId}
		msgJson, err := json.Marshal(msgPayload)
		if err == nil {
			if err := s.publisherService.Publish(ctx, msgJson); err != nil {
				fmt.Printf("[WARN] Failed to queue case post-processing: %v\n", err)
			}
		}
	}
}

func (s *wizardService) UpdateBasicInfo(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.UpdateBasicInfoRequest) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	next := s.controller.UpdateBasicInfo(snap, wizard.BasicInfoInput{
		Name:         req.Name,
		CaseNumber:   req.CaseNumber,
		Type:         req.Type,
		Jurisdiction: req.Jurisdiction,
		Venue:        req.Venue,
		Description:  req.Description,
	})
	return s.save(ctx, userId, next, role)
}

func (s *wizardService) AddParty(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.AddPartyRequest) (*wizard.State, *wizard.StepResult, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	next, res := s.controller.AddParty(snap, wizard.Party{
		Id:       req.Id,
		Name:     req.Name,
		Type:     req.Type,
		Category: req.Category,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}, role)
	if !res.Valid {
		state := s.controller.State(snap, role)
		return &state, &res, nil
	}
	state, err := s.save(ctx, userId, next, role)
	return state, &res, err
}

func (s *wizardService) RemoveParty(ctx context.Context, userId uuid.UUID, role wizard.Role, partyId string) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userId, s.controller.RemoveParty(snap, partyId), role)
}

func (s *wizardService) AddKeyDate(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.AddKeyDateRequest) (*wizard.State, *wizard.StepResult, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	next, res := s.controller.AddKeyDate(snap, wizard.KeyDate{
		Id:          req.Id,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Priority:    req.Priority,
		Description: req.Description,
	}, role)
	if !res.Valid {
		state := s.controller.State(snap, role)
		return &state, &res, nil
	}
	state, err := s.save(ctx, userId, next, role)
	return state, &res, err
}

func (s *wizardService) RemoveKeyDate(ctx context.Context, userId uuid.UUID, role wizard.Role, dateId string) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userId, s.controller.RemoveKeyDate(snap, dateId), role)
}

func (s *wizardService) AddDocument(ctx context.Context, userId uuid.UUID, role wizard.Role, req *dto.AddDocumentRequest) (*wizard.State, *wizard.StepResult, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	next, res := s.controller.AddDocument(snap, wizard.DocumentPlaceholder{
		Id:           req.Id,
		Title:        req.Title,
		Type:         req.Type,
		Category:     req.Category,
		Description:  req.Description,
		ReceivedDate: req.ReceivedDate,
		DueDate:      req.DueDate,
	}, role)
	if !res.Valid {
		state := s.controller.State(snap, role)
		return &state, &res, nil
	}
	state, err := s.save(ctx, userId, next, role)
	return state, &res, err
}

func (s *wizardService) RemoveDocument(ctx context.Context, userId uuid.UUID, role wizard.Role, documentId string) (*wizard.State, error) {
	snap, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userId, s.controller.RemoveDocument(snap, documentId), role)
}

// IsSubmitValidation reports whether the error is the submit-blocked case as
// opposed to a storage or writer failure.
func IsSubmitValidation(err error) bool {
	return errors.Is(err, wizard.ErrSubmitValidation)
}
