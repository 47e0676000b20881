package broker

import "time"

type EventType string

// Standardized event types in format: <resource>.<action>
const (
	UserCreated EventType = "user.created"

	TaskCreated EventType = "task.created"
	TaskUpdated EventType = "task.updated"
	TaskDeleted EventType = "task.deleted"
)

const (
	UserEventsSubject = "user_events"
	TaskEventsSubject = "task_events"
)

// Event is the JSON envelope published on the broker.
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}
