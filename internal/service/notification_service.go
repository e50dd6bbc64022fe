package service

import (
	"context"
	"fmt"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"
	"caseflow-be/internal/pkg/logger"
	"caseflow-be/internal/pkg/mailer"
	"caseflow-be/internal/repository/specification"
	"caseflow-be/internal/repository/unitofwork"
	"caseflow-be/pkg/events"
	pktNats "caseflow-be/pkg/nats"
	"caseflow-be/pkg/wizard"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification dto.NotificationResponse)
}

type NotificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	subscriber   *pktNats.Subscriber
	delivery     NotificationDelivery
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery NotificationDelivery, emailService mailer.IEmailService, log logger.ILogger) *NotificationService {
	return &NotificationService{
		uowFactory:   uowFactory,
		subscriber:   sub,
		delivery:     delivery,
		emailService: emailService,
		logger:       log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	switch event.EventType() {
	case events.TypeCaseCreated:
		return s.handleCaseCreated(ctx, event.Payload())
	default:
		// Unknown event types are acked, not retried.
		return nil
	}
}

func (s *NotificationService) handleCaseCreated(ctx context.Context, payload map[string]interface{}) error {
	userIdStr, _ := payload["user_id"].(string)
	caseIdStr, _ := payload["case_id"].(string)
	caseName, _ := payload["case_name"].(string)
	userType, _ := payload["user_type"].(string)

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Event carries no valid user_id, dropping", map[string]interface{}{"payload": payload})
		return nil
	}

	notification := &entity.Notification{
		Id:     uuid.New(),
		UserId: userId,
		Type:   entity.NotificationCaseCreated,
		Title:  "Case created",
		Body:   fmt.Sprintf("Your case \"%s\" has been created and is pending review.", caseName),
		Data: map[string]interface{}{
			"case_id":   caseIdStr,
			"case_name": caseName,
			"user_type": string(wizard.ParseRole(userType)),
		},
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userId, toNotificationResponse(notification))
	}

	if s.emailService != nil {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err == nil && user != nil {
			go func(email string) {
				if mailErr := s.emailService.SendCaseCreated(email, caseName, caseIdStr); mailErr != nil {
					s.logger.Warn("NotificationService", "Failed to send case confirmation email", map[string]interface{}{"error": mailErr.Error()})
				}
			}(user.Email)
		}
	}

	return nil
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Id:        n.Id,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.NotificationResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, 0, err
	}

	total, err := uow.NotificationRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, 0, err
	}

	res := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, toNotificationResponse(n))
	}
	return res, total, nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.UnreadOnly{},
	)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAsRead(ctx, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllAsRead(ctx, userId)
}
