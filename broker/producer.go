package broker

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

var conn *nats.Conn

// InitProducer connects to NATS. The caller may treat failure as
// non-fatal; Publish is a no-op until a connection exists.
func InitProducer(url string) error {
	nc, err := nats.Connect(url, nats.Name("tasknest-api"))
	if err != nil {
		return err
	}
	conn = nc
	log.Println("NATS producer initialized")
	return nil
}

// Publish emits an event on the given subject. Publish failures are
// logged and swallowed; eventing never fails a request.
func Publish(subject string, eventType EventType, payload map[string]interface{}) {
	if conn == nil {
		return
	}

	event := Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}

	if err := conn.Publish(subject, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}

func CloseProducer() {
	if conn != nil {
		if err := conn.Drain(); err != nil {
			log.Printf("Failed to drain NATS connection: %v", err)
		}
		conn = nil
	}
}
