package entities

import "time"

const EventTypeOrderStatusChanged = "order.status.changed"

type OutboxMessage struct {
	ID          int64
	EventType   string
	Key         string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
