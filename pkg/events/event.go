package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published by this service.
const (
	TypeCaseCreated    = "CASE_CREATED"
	TypeUserRegistered = "USER_REGISTERED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CASE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the standard Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewCaseCreated builds the event emitted after a wizard submission lands.
func NewCaseCreated(caseID, ownerID uuid.UUID, caseName, userType string) BaseEvent {
	return BaseEvent{
		Type: TypeCaseCreated,
		Data: map[string]interface{}{
			"case_id":   caseID.String(),
			"user_id":   ownerID.String(),
			"case_name": caseName,
			"user_type": userType,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserRegistered builds the event emitted after a successful registration.
func NewUserRegistered(userID uuid.UUID, email, fullName, userType string) BaseEvent {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id":   userID.String(),
			"email":     email,
			"full_name": fullName,
			"user_type": userType,
		},
		OccurredAt: time.Now(),
	}
}
