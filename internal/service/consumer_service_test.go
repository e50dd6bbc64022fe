package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	mu   sync.Mutex
	sent []dto.NotificationResponse
}

func (d *fakeDelivery) Send(userID uuid.UUID, notification dto.NotificationResponse) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, notification)
}

func (d *fakeDelivery) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent)
}

func deadlineIn(days int, priority string) *entity.CaseDeadline {
	return &entity.CaseDeadline{
		Id:       uuid.New(),
		Title:    "Answer deadline",
		Date:     time.Now().AddDate(0, 0, days),
		Type:     "filing_deadline",
		Priority: priority,
	}
}

func publishPostProcess(t *testing.T, pubSub *gochannel.GoChannel, topic string, caseID, userID uuid.UUID) {
	t.Helper()
	payload, err := json.Marshal(dto.CasePostProcessMessage{CaseId: caseID, UserId: userID})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestConsumerCreatesRemindersForNearDeadlines(t *testing.T) {
	uow := newFakeUnitOfWork()
	caseID, userID := uuid.New(), uuid.New()
	uow.cases.findOne = &entity.LegalCase{Id: caseID, UserId: userID, Name: "Smith v. Jones"}
	uow.deadlines.findAll = []*entity.CaseDeadline{
		deadlineIn(2, "critical"),  // within window, reminded
		deadlineIn(3, "high"),      // within window, reminded
		deadlineIn(3, "low"),       // low priority, skipped
		deadlineIn(30, "critical"), // too far out, skipped
	}
	delivery := &fakeDelivery{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewConsumerService(pubSub, "CASE_POST_PROCESS", &fakeUowFactory{uow: uow}, delivery)
	require.NoError(t, svc.Consume(context.Background()))

	publishPostProcess(t, pubSub, "CASE_POST_PROCESS", caseID, userID)

	waitFor(t, func() bool { return delivery.count() == 2 })

	count, _ := uow.notifications.Count(context.Background())
	assert.Equal(t, int64(2), count)

	created, _ := uow.notifications.FindAll(context.Background())
	for _, n := range created {
		assert.Equal(t, entity.NotificationDeadlineSoon, n.Type)
		assert.Equal(t, userID, n.UserId)
		assert.Contains(t, n.Body, "Smith v. Jones")
	}
}

func TestConsumerIgnoresCaseWithoutNearDeadlines(t *testing.T) {
	uow := newFakeUnitOfWork()
	caseID, userID := uuid.New(), uuid.New()
	uow.cases.findOne = &entity.LegalCase{Id: caseID, UserId: userID, Name: "Quiet case"}
	uow.deadlines.findAll = []*entity.CaseDeadline{deadlineIn(60, "critical")}
	delivery := &fakeDelivery{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewConsumerService(pubSub, "CASE_POST_PROCESS", &fakeUowFactory{uow: uow}, delivery)
	require.NoError(t, svc.Consume(context.Background()))

	publishPostProcess(t, pubSub, "CASE_POST_PROCESS", caseID, userID)

	// Give the consumer a beat, then confirm nothing was staged.
	time.Sleep(200 * time.Millisecond)
	count, _ := uow.notifications.Count(context.Background())
	assert.Equal(t, int64(0), count)
	assert.Equal(t, 0, delivery.count())
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	uow := newFakeUnitOfWork()
	delivery := &fakeDelivery{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewConsumerService(pubSub, "CASE_POST_PROCESS", &fakeUowFactory{uow: uow}, delivery)
	require.NoError(t, svc.Consume(context.Background()))

	require.NoError(t, pubSub.Publish("CASE_POST_PROCESS", message.NewMessage(watermill.NewUUID(), []byte("{broken"))))

	time.Sleep(200 * time.Millisecond)
	count, _ := uow.notifications.Count(context.Background())
	assert.Equal(t, int64(0), count)
}
