package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification event type codes.
const (
	NotificationCaseCreated  = "CASE_CREATED"
	NotificationDeadlineSoon = "DEADLINE_SOON"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      string
	Title     string
	Body      string
	Data      map[string]interface{}
	IsRead    bool
	CreatedAt time.Time
}
