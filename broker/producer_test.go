package broker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublish_WithoutConnection(t *testing.T) {
	// Publishing is a no-op when no broker is connected.
	assert.NotPanics(t, func() {
		Publish(TaskEventsSubject, TaskCreated, map[string]interface{}{"task_id": "t1"})
	})
}

func TestCloseProducer_WithoutConnection(t *testing.T) {
	assert.NotPanics(t, func() {
		CloseProducer()
	})
}

func TestEventEnvelope(t *testing.T) {
	event := Event{
		Type:      TaskUpdated,
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Payload:   map[string]interface{}{"task_id": "t1", "completed": true},
	}

	data, err := json.Marshal(event)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"type":"task.updated"`)
	assert.Contains(t, string(data), `"task_id":"t1"`)
}
