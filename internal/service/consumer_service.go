package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"
	"caseflow-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// reminderWindow is how far ahead a deadline must fall to warrant an
// immediate reminder at case creation.
const reminderWindow = 7 * 24 * time.Hour

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the post-submit queue. For every freshly created
// case it stages reminder notifications for near-term high-priority
// deadlines, off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	delivery   NotificationDelivery
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	delivery NotificationDelivery,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		delivery:   delivery,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.CasePostProcessMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Post-processing case %s", payload.CaseId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	legalCase, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: payload.CaseId})
	if err != nil {
		log.Printf("[ERROR] Failed to get case %s: %v", payload.CaseId, err)
		msg.Nack()
		return
	}
	if legalCase == nil {
		log.Printf("[ERROR] Case not found: %s", payload.CaseId)
		msg.Ack() // Case deleted? Ack.
		return
	}

	deadlines, err := uow.CaseDeadlineRepository().FindAll(ctx,
		specification.ByCaseID{CaseID: payload.CaseId},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to get deadlines for case %s: %v", payload.CaseId, err)
		msg.Nack()
		return
	}

	cutoff := time.Now().Add(reminderWindow)
	var reminders []*entity.Notification
	for _, d := range deadlines {
		if d.Priority != "critical" && d.Priority != "high" {
			continue
		}
		if d.Date.After(cutoff) {
			continue
		}
		reminders = append(reminders, &entity.Notification{
			Id:     uuid.New(),
			UserId: payload.UserId,
			Type:   entity.NotificationDeadlineSoon,
			Title:  "Upcoming deadline",
			Body:   fmt.Sprintf("\"%s\" for case \"%s\" is due %s.", d.Title, legalCase.Name, d.Date.Format("Jan 2, 2006")),
			Data: map[string]interface{}{
				"case_id":     legalCase.Id.String(),
				"deadline_id": d.Id.String(),
				"priority":    d.Priority,
			},
			CreatedAt: time.Now(),
		})
	}

	if len(reminders) == 0 {
		msg.Ack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	for _, reminder := range reminders {
		if err := uow.NotificationRepository().Create(ctx, reminder); err != nil {
			log.Printf("[ERROR] Failed to create reminder: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	if cs.delivery != nil {
		for _, reminder := range reminders {
			cs.delivery.Send(payload.UserId, toNotificationResponse(reminder))
		}
	}

	log.Printf("[SUCCESS] Case %s post-processed: %d reminders", payload.CaseId, len(reminders))
	msg.Ack()
}
